// Package roster is the demo record type used by the command line tool.
package roster

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lingEric/exceltool/pkg/exceltool/models"
	"github.com/lingEric/exceltool/pkg/exceltool/schema"
)

// GenderColumn is the export position of the gender column.
const GenderColumn = 3

// Student is one row of the school roster.
type Student struct {
	_        struct{}  `excel:"export" title:"School roster"`
	ID       uuid.UUID `excel:"name=id,width=180,import=0" json:"id"`
	Name     string    `excel:"name=name,import=1" json:"name"`
	Age      int       `excel:"name=age,import=2" json:"age"`
	Gender   string    `excel:"name=gender,translate,import=3" json:"gender"`
	Grades   []int     `excel:"name=grades,width=800,getter=GradeString,import=4,setter=SetGrades" json:"grades"`
	Enrolled time.Time `excel:"name=enrolled,width=250,import=5" json:"enrolled"`
}

// GradeString joins the grades with commas.
func (s *Student) GradeString() string {
	parts := make([]string, len(s.Grades))
	for i, g := range s.Grades {
		parts[i] = strconv.Itoa(g)
	}
	return strings.Join(parts, ",")
}

// SetGrades parses a comma separated grade list.
func (s *Student) SetGrades(raw string) error {
	s.Grades = nil
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		g, err := strconv.Atoi(part)
		if err != nil {
			return fmt.Errorf("grade %q: %w", part, err)
		}
		s.Grades = append(s.Grades, g)
	}
	return nil
}

// Schema returns the cached tag schema of Student.
func Schema() (*schema.Schema[Student], error) {
	return schema.Of[Student]()
}

// Translations returns the default gender display values.
func Translations() models.TranslationTable {
	return models.TranslationTable{
		GenderColumn: {"F": "Female", "M": "Male"},
	}
}

var enrollment = time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)

// Generate returns n students. The same seed yields the same roster.
func Generate(n int, seed uint64) []Student {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]Student, n)
	for i := range out {
		gender := "M"
		if i&2 != 0 {
			gender = "F"
		}
		name := fmt.Sprintf("Student %d", i+1)
		out[i] = Student{
			ID:       uuid.NewSHA1(uuid.NameSpaceOID, fmt.Appendf(nil, "%d/%s", seed, name)),
			Name:     name,
			Age:      rng.IntN(20) + 1,
			Gender:   gender,
			Grades:   []int{60 + rng.IntN(41), 60 + rng.IntN(41), 60 + rng.IntN(41)},
			Enrolled: enrollment.AddDate(0, 0, rng.IntN(365)),
		}
	}
	return out
}
