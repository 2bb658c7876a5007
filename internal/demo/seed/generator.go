package seed

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

type SchoolRecord struct {
	SchoolID    int64
	Name        string
	City        string
	State       string
	Rating      float64
	Students    int64
	Established time.Time
	Charter     bool
}

// Generator produces a repeatable stream of school records for a given
// seed. SchoolID is the unique monotonic key; names may repeat.
type Generator struct {
	rnd      *rand.Rand
	sequence int64
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

func (g *Generator) NextSchool() SchoolRecord {
	g.sequence++

	year := 1900 + g.rnd.Intn(120)
	month := time.Month(1 + g.rnd.Intn(12))
	day := 1 + g.rnd.Intn(28)

	return SchoolRecord{
		SchoolID:    g.sequence,
		Name:        fmt.Sprintf("%s %s", pickOne(g.rnd, namePrefixes), pickOne(g.rnd, nameSuffixes)),
		City:        pickOne(g.rnd, cities),
		State:       pickOne(g.rnd, states),
		Rating:      round1(2.5 + g.rnd.Float64()*2.5),
		Students:    int64(150 + g.rnd.Intn(2350)),
		Established: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		Charter:     g.rnd.Intn(100) < 20,
	}
}

var namePrefixes = []string{
	"Lincoln", "Washington", "Jefferson", "Roosevelt", "Franklin",
	"Riverside", "Oakwood", "Maplewood", "Hillcrest", "Lakeview",
	"Springfield", "Kennedy", "Jackson", "Madison", "Monroe",
}

var nameSuffixes = []string{
	"High School", "Elementary", "Middle School", "Academy", "Preparatory School",
}

var cities = []string{
	"Springfield", "Riverton", "Fairview", "Georgetown", "Clinton",
	"Salem", "Madison", "Arlington", "Ashland", "Burlington",
}

var states = []string{"CA", "TX", "NY", "FL", "IL", "OH", "WA", "CO"}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

func pickOne(r *rand.Rand, values []string) string {
	return values[r.Intn(len(values))]
}
