// Package prospect holds the workspace's mock prospect records.
//
// The Registry is an ordered in-memory collection with create/delete, an
// autocomplete hint for names that look like existing records, a substring
// duplicate detector, and a merge that renames flagged records. Records are
// imported from and exported to CSV (see csv.go).
//
// Identifiers are allocated from a counter seeded past the largest existing
// id, so they never collide within a session.
//
// A Registry is owned by the UI update loop and is not safe for concurrent use.
package prospect

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// IDPrefix prefixes every prospect identifier.
const IDPrefix = "CL-"

// Prospect is one customer lead.
type Prospect struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Premium float64 `json:"premium"`
	Status  Status  `json:"status"`
}

// Draft is the intake form's pending record.
type Draft struct {
	Name    string
	Email   string
	Premium float64
	Status  Status
}

// Suggestion points the intake form at a record that looks like the one being typed.
type Suggestion struct {
	ID      string
	Name    string
	Message string
}

// Seed returns the demo records every session starts with.
func Seed() []Prospect {
	return []Prospect{
		{ID: "CL-1001", Name: "Arcadia Logistics", Email: "risk@arcadialogistics.com", Premium: 85000, Status: StatusEngaged},
		{ID: "CL-1002", Name: "Harbor Retail Group", Email: "procurement@harborretail.com", Premium: 61000, Status: StatusNew},
		{ID: "CL-1003", Name: "Northwind Construction", Email: "riskdesk@northwind.com", Premium: 129500, Status: StatusWon},
		{ID: "CL-1004", Name: "Velocity Health", Email: "broker@velocityhealth.io", Premium: 94500, Status: StatusEngaged},
	}
}

// Registry is the ordered prospect collection and its intake bookkeeping.
type Registry struct {
	prospects  []Prospect
	selected   string
	duplicates []string // ids flagged by the last Create
	resolved   int
	nextID     int
	logger     *slog.Logger
}

// NewRegistry creates a registry holding a copy of seed.
func NewRegistry(seed []Prospect) *Registry {
	r := &Registry{
		prospects: slices.Clone(seed),
		nextID:    1000,
		logger:    slog.Default(),
	}
	for _, p := range seed {
		r.observeID(p.ID)
	}
	return r
}

// SetLogger replaces the registry's logger. Nil restores slog.Default().
func (r *Registry) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	r.logger = logger
}

// observeID advances the allocator past numeric ids of the form CL-<n>.
func (r *Registry) observeID(id string) {
	n, err := strconv.Atoi(strings.TrimPrefix(id, IDPrefix))
	if err != nil || !strings.HasPrefix(id, IDPrefix) {
		return
	}
	if n > r.nextID {
		r.nextID = n
	}
}

func (r *Registry) allocateID() string {
	r.nextID++
	return fmt.Sprintf("%s%d", IDPrefix, r.nextID)
}

// Create adds a prospect from the intake form and selects it.
// A blank name blocks submission. Existing records whose name contains the new
// name (case-insensitive) are flagged as possible duplicates; the flag list is
// replaced on every successful create.
func (r *Registry) Create(d Draft) (Prospect, bool) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return Prospect{}, false
	}
	r.duplicates = r.matching(name)

	p := Prospect{
		ID:      r.allocateID(),
		Name:    name,
		Email:   d.Email,
		Premium: d.Premium,
		Status:  d.Status,
	}
	r.prospects = append(r.prospects, p)
	r.selected = p.ID
	r.logger.Debug("prospect created", "id", p.ID, "duplicates", len(r.duplicates))
	return p, true
}

// matching returns ids of records whose name contains name, case-insensitively.
func (r *Registry) matching(name string) []string {
	needle := strings.ToLower(name)
	var ids []string
	for _, p := range r.prospects {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// Delete removes a prospect. Deleting the selected record clears the selection.
func (r *Registry) Delete(id string) bool {
	i := r.index(id)
	if i < 0 {
		return false
	}
	r.prospects = slices.Delete(r.prospects, i, i+1)
	if r.selected == id {
		r.selected = ""
	}
	return true
}

// Select marks a record as active. Unknown ids clear the selection.
func (r *Registry) Select(id string) {
	if r.index(id) < 0 {
		r.selected = ""
		return
	}
	r.selected = id
}

// Selected returns the active record.
func (r *Registry) Selected() (Prospect, bool) {
	i := r.index(r.selected)
	if i < 0 {
		return Prospect{}, false
	}
	return r.prospects[i], true
}

// Get returns the record with the given id.
func (r *Registry) Get(id string) (Prospect, bool) {
	i := r.index(id)
	if i < 0 {
		return Prospect{}, false
	}
	return r.prospects[i], true
}

// All returns a copy of the records in order.
func (r *Registry) All() []Prospect {
	return slices.Clone(r.prospects)
}

// Len returns the number of records.
func (r *Registry) Len() int {
	return len(r.prospects)
}

// TotalPremium sums premium across all records.
func (r *Registry) TotalPremium() float64 {
	var total float64
	for _, p := range r.prospects {
		total += p.Premium
	}
	return total
}

// Suggest returns an autocomplete hint for a name being typed. Among records
// whose name contains the input, the closest by edit distance wins. Every
// candidate contains the input, so that distance is the length difference:
// the shortest matching name wins, and ties keep collection order.
func (r *Registry) Suggest(input string) (Suggestion, bool) {
	if input == "" {
		return Suggestion{}, false
	}
	needle := strings.ToLower(input)
	best, bestDist := -1, 0
	for i, p := range r.prospects {
		lower := strings.ToLower(p.Name)
		if !strings.Contains(lower, needle) {
			continue
		}
		d := levenshtein.ComputeDistance(needle, lower)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Suggestion{}, false
	}
	p := r.prospects[best]
	return Suggestion{
		ID:      p.ID,
		Name:    p.Name,
		Message: fmt.Sprintf("Looks similar to %s. You can link to existing record %s.", p.Name, p.ID),
	}, true
}

// DuplicateAlerts returns the ids flagged by the last create.
func (r *Registry) DuplicateAlerts() []string {
	return slices.Clone(r.duplicates)
}

// DuplicatesResolved counts flagged records handled by MergeDuplicates this session.
func (r *Registry) DuplicatesResolved() int {
	return r.resolved
}

// MergeDuplicates renames every flagged record to name and clears the flags.
// The resolved counter advances even when name is blank; a blank name then
// leaves the records and flags untouched. Returns the number of renamed records.
func (r *Registry) MergeDuplicates(name string) int {
	r.resolved += len(r.duplicates)
	merged := strings.TrimSpace(name)
	if merged == "" {
		return 0
	}
	renamed := 0
	for i := range r.prospects {
		if slices.Contains(r.duplicates, r.prospects[i].ID) {
			r.prospects[i].Name = merged
			renamed++
		}
	}
	r.logger.Info("duplicates merged", "name", merged, "renamed", renamed)
	r.duplicates = nil
	return renamed
}

// Append adds already-built records, assigning fresh ids.
func (r *Registry) Append(records ...Prospect) []Prospect {
	added := make([]Prospect, 0, len(records))
	for _, p := range records {
		p.ID = r.allocateID()
		r.prospects = append(r.prospects, p)
		added = append(added, p)
	}
	return added
}

func (r *Registry) index(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(r.prospects, func(p Prospect) bool { return p.ID == id })
}
