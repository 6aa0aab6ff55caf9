// Package usergen fabricates the user population indexed alongside the real
// corpus. The corpus ships no person data, so demo users are synthesized and
// attached to real structures.
package usergen

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/datainclusion/search-backend/model"
)

const dateLayout = "2006-01-02"

// A quarter of generated names come from these lists so the population is not
// uniformly French-sounding. The lists are a small curated sample of common
// West and North African names.
var (
	africanFirstNames = []string{
		"Aminata", "Fatou", "Moussa", "Ibrahima", "Mariama",
		"Ousmane", "Aissatou", "Mamadou", "Khadija", "Youssef",
		"Awa", "Sekou", "Nadia", "Karim", "Fatima",
		"Amadou", "Salimata", "Driss", "Yasmina", "Boubacar",
	}
	africanLastNames = []string{
		"Diallo", "Traore", "Kone", "Cisse", "Ndiaye",
		"Toure", "Keita", "Camara", "Benali", "Sow",
		"Diop", "Coulibaly", "El Amrani", "Sylla", "Ba",
	}
)

// Options tunes the generated population.
type Options struct {
	// TotalUsers is the overall population size.
	TotalUsers int
	// UsersPerSIAE is the guaranteed population of each selected insertion
	// enterprise, professionals included.
	UsersPerSIAE int
	// ProfessionalsPerSIAE is how many of a selected enterprise's users are
	// flagged professional.
	ProfessionalsPerSIAE int
	// Seed fixes the random stream; zero seeds from entropy.
	Seed uint64
}

func (o Options) withDefaults() Options {
	if o.TotalUsers <= 0 {
		o.TotalUsers = 10000
	}
	if o.UsersPerSIAE <= 0 {
		o.UsersPerSIAE = 100
	}
	if o.ProfessionalsPerSIAE <= 0 {
		o.ProfessionalsPerSIAE = 5
	}
	return o
}

// Generate fabricates the full user population. Each selected insertion
// enterprise gets a fixed-size cohort with its first few members flagged
// professional; the remainder of the population is spread round-robin over the
// other named structures with a 5% professional rate.
func Generate(opts Options, siaes, structures []model.Structure) []model.User {
	opts = opts.withDefaults()
	f := gofakeit.New(opts.Seed)
	now := time.Now()

	users := make([]model.User, 0, opts.TotalUsers)
	seq := 0

	for _, s := range siaes {
		for i := 0; i < opts.UsersPerSIAE && len(users) < opts.TotalUsers; i++ {
			seq++
			users = append(users, newUser(f, now, seq, s, i < opts.ProfessionalsPerSIAE))
		}
	}

	pool := othersPool(siaes, structures)
	for i := 0; len(users) < opts.TotalUsers; i++ {
		var s model.Structure
		if len(pool) > 0 {
			s = pool[i%len(pool)]
		}
		seq++
		users = append(users, newUser(f, now, seq, s, f.Number(1, 100) <= 5))
	}
	return users
}

// othersPool lists the named structures not already covered by a cohort.
func othersPool(siaes, structures []model.Structure) []model.Structure {
	covered := make(map[string]bool, len(siaes))
	for _, s := range siaes {
		covered[s.ID] = true
	}
	var pool []model.Structure
	for _, s := range structures {
		if s.Name == "" || covered[s.ID] {
			continue
		}
		pool = append(pool, s)
	}
	return pool
}

func newUser(f *gofakeit.Faker, now time.Time, seq int, s model.Structure, professional bool) model.User {
	first, last := f.FirstName(), f.LastName()
	if f.Number(1, 100) > 75 {
		first = africanFirstNames[f.Number(0, len(africanFirstNames)-1)]
		last = africanLastNames[f.Number(0, len(africanLastNames)-1)]
	}

	start := f.DateRange(now.AddDate(-3, 0, 0), now)
	creation := start.AddDate(0, 0, -f.Number(1, 30))

	return model.User{
		ID:             userID(seq),
		FirstName:      first,
		LastName:       last,
		IsProfessional: professional,
		StructureID:    s.ID,
		StructureName:  s.Name,
		StartDate:      start.Format(dateLayout),
		CreationDate:   creation.Format(dateLayout),
	}
}

func userID(seq int) string {
	return fmt.Sprintf("user_%06d", seq)
}
