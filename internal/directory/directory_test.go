package directory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const fixtureJSON = `{
  "metadata": {
    "institution": "Test University",
    "campus": "Main",
    "website": "https://example.edu",
    "scraped_at": "2025-06-01"
  },
  "schools": {
    "School of Engineering": {
      "departments": {
        "cs": {
          "code": "cs",
          "name": "Computer Science",
          "school": "School of Engineering",
          "url": "https://example.edu/cs",
          "head_of_department": {
            "name": "Alice Hart",
            "email": "alice@example.edu",
            "profile": "https://example.edu/alice",
            "image": ""
          },
          "faculty": [
            {"name": "Bob Stone", "email": "bob@example.edu", "profile": "", "image": "", "office": "B-204"}
          ]
        },
        "ee": {
          "code": "ee",
          "name": "Electrical Engineering",
          "school": "School of Engineering",
          "url": "https://example.edu/ee",
          "head_of_department": null,
          "faculty": [
            {"name": "Carol Reyes", "email": "carol@example.edu", "profile": "", "image": ""}
          ]
        }
      }
    },
    "School of Sciences": {
      "departments": {
        "math": {
          "code": "math",
          "name": "Mathematics",
          "school": "School of Sciences",
          "url": "https://example.edu/math",
          "head_of_department": null,
          "faculty": [
            {"name": "Dan Alder", "email": "dan@example.edu", "profile": "", "image": ""}
          ]
        }
      }
    }
  }
}`

func loadFixture(t *testing.T) *Directory {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faculty.json")
	err := os.WriteFile(path, []byte(fixtureJSON), 0o644)
	assert.NoError(t, err)

	d, err := Load(path)
	assert.NoError(t, err)
	return d
}

func TestLoad_FlattensAndSorts(t *testing.T) {
	d := loadFixture(t)

	assert.Equal(t, 4, d.Count())

	all := d.All()
	// Sorted by department name, then member name
	assert.Equal(t, "Alice Hart", all[0].Name)
	assert.Equal(t, "Bob Stone", all[1].Name)
	assert.Equal(t, "Carol Reyes", all[2].Name)
	assert.Equal(t, "Dan Alder", all[3].Name)
}

func TestLoad_IDsAreStable(t *testing.T) {
	d := loadFixture(t)

	hod, ok := d.ByID("cs-hod-alice@example.edu")
	assert.True(t, ok)
	assert.Equal(t, "Alice Hart", hod.Name)
	assert.True(t, hod.IsHOD)

	member, ok := d.ByID("cs-bob@example.edu")
	assert.True(t, ok)
	assert.Equal(t, "Bob Stone", member.Name)
	assert.False(t, member.IsHOD)
	assert.Equal(t, "B-204", member.Office)

	_, ok = d.ByID("cs-nobody@example.edu")
	assert.False(t, ok)
}

func TestLoad_Filters(t *testing.T) {
	d := loadFixture(t)

	assert.Equal(t, []string{"Computer Science", "Electrical Engineering", "Mathematics"}, d.Departments())
	assert.Equal(t, []string{"School of Engineering", "School of Sciences"}, d.Schools())
}

func TestLoad_Metadata(t *testing.T) {
	d := loadFixture(t)

	assert.Equal(t, "Test University", d.Metadata().Institution)
	assert.Equal(t, "Main", d.Metadata().Campus)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faculty.json")
	err := os.WriteFile(path, []byte("{not json"), 0o644)
	assert.NoError(t, err)

	_, err = Load(path)
	assert.Error(t, err)
}

func TestSearch_TokenMatching(t *testing.T) {
	d := loadFixture(t)

	// All tokens must match, case-insensitively
	results := d.Search("alice computer", "", "")
	assert.Len(t, results, 1)
	assert.Equal(t, "Alice Hart", results[0].Name)

	// Email matches too
	results = d.Search("carol@example.edu", "", "")
	assert.Len(t, results, 1)
	assert.Equal(t, "Carol Reyes", results[0].Name)

	results = d.Search("alice mathematics", "", "")
	assert.Empty(t, results)
}

func TestSearch_DepartmentAndSchoolFilters(t *testing.T) {
	d := loadFixture(t)

	results := d.Search("", "Computer Science", "")
	assert.Len(t, results, 2)

	results = d.Search("", "", "School of Sciences")
	assert.Len(t, results, 1)
	assert.Equal(t, "Dan Alder", results[0].Name)

	results = d.Search("", "Mathematics", "School of Engineering")
	assert.Empty(t, results)
}

func TestSearch_EmptyQueryReturnsAll(t *testing.T) {
	d := loadFixture(t)

	assert.Len(t, d.Search("", "", ""), 4)
}
