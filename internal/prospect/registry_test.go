package prospect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_SeedAndTotals(t *testing.T) {
	r := NewRegistry(Seed())

	assert.Equal(t, 4, r.Len())
	assert.Equal(t, float64(85000+61000+129500+94500), r.TotalPremium())
	_, ok := r.Selected()
	assert.False(t, ok)
}

func TestCreate_EmptyNameIsNoop(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		r := NewRegistry(Seed())
		_, ok := r.Create(Draft{Name: name, Email: "x@y.z"})
		assert.False(t, ok, "name %q", name)
		assert.Equal(t, 4, r.Len())
		assert.Empty(t, r.DuplicateAlerts())
	}
}

func TestCreate_AppendsSelectsAndAllocatesID(t *testing.T) {
	r := NewRegistry(Seed())

	p, ok := r.Create(Draft{Name: "  Horizon Manufacturing ", Email: "ops@horizon.com", Premium: 75000, Status: StatusWon})
	require.True(t, ok)
	assert.Equal(t, "CL-1005", p.ID)
	assert.Equal(t, "Horizon Manufacturing", p.Name)
	assert.Equal(t, StatusWon, p.Status)

	sel, ok := r.Selected()
	require.True(t, ok)
	assert.Equal(t, p.ID, sel.ID)

	all := r.All()
	assert.Equal(t, p, all[len(all)-1])

	p2, _ := r.Create(Draft{Name: "Second"})
	assert.Equal(t, "CL-1006", p2.ID)
}

func TestCreate_FlagsSubstringDuplicates(t *testing.T) {
	r := NewRegistry(Seed())

	_, ok := r.Create(Draft{Name: "north"})
	require.True(t, ok)
	assert.Equal(t, []string{"CL-1003"}, r.DuplicateAlerts())

	// A create with no matches clears the previous alerts.
	_, ok = r.Create(Draft{Name: "Zenith Marine"})
	require.True(t, ok)
	assert.Empty(t, r.DuplicateAlerts())
}

func TestCreate_DuplicatesDoNotIncludeNewRecord(t *testing.T) {
	r := NewRegistry(nil)
	_, _ = r.Create(Draft{Name: "Acme"})
	assert.Empty(t, r.DuplicateAlerts())

	_, _ = r.Create(Draft{Name: "acme"})
	assert.Equal(t, []string{"CL-1001"}, r.DuplicateAlerts())
}

func TestIDsNeverReused(t *testing.T) {
	r := NewRegistry(Seed())
	p, _ := r.Create(Draft{Name: "Temp"})
	require.True(t, r.Delete(p.ID))

	q, _ := r.Create(Draft{Name: "Temp again"})
	assert.NotEqual(t, p.ID, q.ID)
}

func TestDelete(t *testing.T) {
	r := NewRegistry(Seed())
	r.Select("CL-1002")

	assert.True(t, r.Delete("CL-1001"))
	sel, ok := r.Selected()
	require.True(t, ok, "deleting another record keeps selection")
	assert.Equal(t, "CL-1002", sel.ID)

	assert.True(t, r.Delete("CL-1002"))
	_, ok = r.Selected()
	assert.False(t, ok)

	assert.False(t, r.Delete("CL-1002"))
	assert.False(t, r.Delete("nope"))
	assert.Equal(t, 2, r.Len())
}

func TestSelect_UnknownClears(t *testing.T) {
	r := NewRegistry(Seed())
	r.Select("CL-1004")
	r.Select("CL-9999")
	_, ok := r.Selected()
	assert.False(t, ok)
}

func TestSuggest(t *testing.T) {
	r := NewRegistry(Seed())

	s, ok := r.Suggest("north")
	require.True(t, ok)
	assert.Equal(t, "CL-1003", s.ID)
	assert.Contains(t, s.Message, "CL-1003")
	assert.Equal(t, "Looks similar to Northwind Construction. You can link to existing record CL-1003.", s.Message)

	_, ok = r.Suggest("")
	assert.False(t, ok)
	_, ok = r.Suggest("zzz")
	assert.False(t, ok)
}

func TestSuggest_PrefersClosestName(t *testing.T) {
	r := NewRegistry([]Prospect{
		{ID: "CL-1", Name: "Harbor Retail Group International"},
		{ID: "CL-2", Name: "Harbor Retail"},
	})
	s, ok := r.Suggest("harbor retail")
	require.True(t, ok)
	assert.Equal(t, "CL-2", s.ID)
}

func TestMergeDuplicates(t *testing.T) {
	r := NewRegistry([]Prospect{
		{ID: "CL-1001", Name: "Northwind Construction"},
		{ID: "CL-1002", Name: "Northwind Holdings"},
		{ID: "CL-1003", Name: "Velocity Health"},
	})
	_, ok := r.Create(Draft{Name: "Northwind"})
	require.True(t, ok)
	require.Len(t, r.DuplicateAlerts(), 2)

	renamed := r.MergeDuplicates("Northwind")
	assert.Equal(t, 2, renamed)
	assert.Equal(t, 2, r.DuplicatesResolved())
	assert.Empty(t, r.DuplicateAlerts())

	got, _ := r.Get("CL-1002")
	assert.Equal(t, "Northwind", got.Name)
	untouched, _ := r.Get("CL-1003")
	assert.Equal(t, "Velocity Health", untouched.Name)
}

func TestMergeDuplicates_BlankNameOnlyCounts(t *testing.T) {
	r := NewRegistry(Seed())
	_, _ = r.Create(Draft{Name: "north"})

	assert.Equal(t, 0, r.MergeDuplicates("  "))
	assert.Equal(t, 1, r.DuplicatesResolved())
	assert.Equal(t, []string{"CL-1003"}, r.DuplicateAlerts())
	got, _ := r.Get("CL-1003")
	assert.Equal(t, "Northwind Construction", got.Name)
}

func TestAll_ReturnsCopy(t *testing.T) {
	r := NewRegistry(Seed())
	all := r.All()
	all[0].Name = "mutated"

	got, _ := r.Get("CL-1001")
	assert.Equal(t, "Arcadia Logistics", got.Name)
}

func TestStatus(t *testing.T) {
	for _, st := range Statuses {
		parsed, err := ParseStatus(st.String())
		require.NoError(t, err)
		assert.Equal(t, st, parsed)
	}
	_, err := ParseStatus("Pending")
	assert.Error(t, err)
	_, err = ParseStatus("new")
	assert.Error(t, err, "matching is case-sensitive")

	assert.Equal(t, StatusNew, StatusOrDefault("Pending"))
	assert.Equal(t, StatusEngaged, StatusNew.Next())
	assert.Equal(t, StatusNew, StatusLost.Next())
	assert.Equal(t, StatusNew, Status(42).Next())
}

func TestStatus_JSON(t *testing.T) {
	b, err := StatusWon.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"Won"`, string(b))

	var s Status
	require.NoError(t, s.UnmarshalJSON([]byte(`"Lost"`)))
	assert.Equal(t, StatusLost, s)
	assert.Error(t, s.UnmarshalJSON([]byte(`"Pending"`)))
}
