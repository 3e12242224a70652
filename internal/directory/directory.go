package directory

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Member is one person as stored in the scraped dataset
type Member struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Profile string `json:"profile"`
	Image   string `json:"image"`
	Office  string `json:"office,omitempty"`
}

// Department groups members under a school
type Department struct {
	Code             string   `json:"code"`
	Name             string   `json:"name"`
	School           string   `json:"school"`
	URL              string   `json:"url"`
	HeadOfDepartment *Member  `json:"head_of_department"`
	Faculty          []Member `json:"faculty"`
}

// School holds its departments keyed by department code
type School struct {
	Departments map[string]Department `json:"departments"`
}

// Metadata describes the scrape that produced the dataset
type Metadata struct {
	Institution string `json:"institution"`
	Campus      string `json:"campus"`
	Website     string `json:"website"`
	ScrapedAt   string `json:"scraped_at"`
}

// Data is the on-disk shape of faculty.json
type Data struct {
	Metadata Metadata          `json:"metadata"`
	Schools  map[string]School `json:"schools"`
}

// Faculty is a flattened directory entry with a stable synthetic ID. The ID
// doubles as the faculty_id reviews are filed under, so it must stay
// deterministic across reloads: "<deptCode>-hod-<email>" for department
// heads, "<deptCode>-<email>" for everyone else.
type Faculty struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Profile        string `json:"profile,omitempty"`
	Image          string `json:"image,omitempty"`
	Office         string `json:"office,omitempty"`
	Department     string `json:"department"`
	DepartmentCode string `json:"department_code"`
	School         string `json:"school"`
	IsHOD          bool   `json:"is_hod"`
}

// Directory is the in-memory faculty directory. It is immutable after load,
// so concurrent readers need no locking.
type Directory struct {
	faculty     []Faculty
	byID        map[string]int
	departments []string
	schools     []string
	metadata    Metadata
}

// New builds a directory from an already flattened faculty list
func New(faculty []Faculty) *Directory {
	d := &Directory{
		faculty: faculty,
		byID:    make(map[string]int, len(faculty)),
	}

	deptSeen := make(map[string]bool)
	schoolSeen := make(map[string]bool)
	for i, f := range faculty {
		d.byID[f.ID] = i
		if !deptSeen[f.Department] {
			deptSeen[f.Department] = true
			d.departments = append(d.departments, f.Department)
		}
		if !schoolSeen[f.School] {
			schoolSeen[f.School] = true
			d.schools = append(d.schools, f.School)
		}
	}
	sort.Strings(d.departments)
	sort.Strings(d.schools)

	return d
}

// Load reads and flattens the scraped dataset at path
func Load(path string) (*Directory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read faculty data: %w", err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse faculty data: %w", err)
	}

	var faculty []Faculty
	for schoolName, school := range data.Schools {
		for deptCode, dept := range school.Departments {
			if dept.HeadOfDepartment != nil {
				faculty = append(faculty, flatten(*dept.HeadOfDepartment, deptCode, dept.Name, schoolName, true))
			}
			for _, member := range dept.Faculty {
				faculty = append(faculty, flatten(member, deptCode, dept.Name, schoolName, false))
			}
		}
	}

	// Map iteration order is random; keep the listing stable.
	sort.Slice(faculty, func(i, j int) bool {
		if faculty[i].Department != faculty[j].Department {
			return faculty[i].Department < faculty[j].Department
		}
		return faculty[i].Name < faculty[j].Name
	})

	d := New(faculty)
	d.metadata = data.Metadata
	return d, nil
}

func flatten(m Member, deptCode, deptName, schoolName string, isHOD bool) Faculty {
	id := fmt.Sprintf("%s-%s", deptCode, m.Email)
	if isHOD {
		id = fmt.Sprintf("%s-hod-%s", deptCode, m.Email)
	}
	return Faculty{
		ID:             id,
		Name:           m.Name,
		Email:          m.Email,
		Profile:        m.Profile,
		Image:          m.Image,
		Office:         m.Office,
		Department:     deptName,
		DepartmentCode: deptCode,
		School:         schoolName,
		IsHOD:          isHOD,
	}
}

// All returns every directory entry
func (d *Directory) All() []Faculty {
	return d.faculty
}

// Count returns the number of directory entries
func (d *Directory) Count() int {
	return len(d.faculty)
}

// ByID looks up a single entry
func (d *Directory) ByID(id string) (*Faculty, bool) {
	i, ok := d.byID[id]
	if !ok {
		return nil, false
	}
	return &d.faculty[i], true
}

// Departments returns the sorted distinct department names
func (d *Directory) Departments() []string {
	return d.departments
}

// Schools returns the sorted distinct school names
func (d *Directory) Schools() []string {
	return d.schools
}

// Metadata returns the scrape metadata of the loaded dataset
func (d *Directory) Metadata() Metadata {
	return d.metadata
}

// Search filters the directory. Splits query into tokens and requires each
// token to appear in the name, email or department, case-insensitively.
// Example: "alice cs" matches an Alice in a CS department.
func (d *Directory) Search(query, department, school string) []Faculty {
	tokens := strings.Fields(strings.ToLower(query))

	results := make([]Faculty, 0)
	for _, f := range d.faculty {
		if department != "" && f.Department != department {
			continue
		}
		if school != "" && f.School != school {
			continue
		}
		if !matchesTokens(f, tokens) {
			continue
		}
		results = append(results, f)
	}
	return results
}

func matchesTokens(f Faculty, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	haystack := strings.ToLower(f.Name + " " + f.Email + " " + f.Department)
	for _, t := range tokens {
		if !strings.Contains(haystack, t) {
			return false
		}
	}
	return true
}
