package domain

// Companies is the fixed roster of billing units. Reference data only.
var Companies = []Company{
	{ID: "schroder", Name: "Schroder", Color: "blue"},
	{ID: "corupa", Name: "Corupá", Color: "emerald"},
	{ID: "jaragua", Name: "Jaraguá", Color: "amber"},
	{ID: "mr-dist", Name: "MR Distribuidora", Color: "purple"},
}

// KnownCompany reports whether id references a company in the roster.
func KnownCompany(id string) bool {
	for _, c := range Companies {
		if c.ID == id {
			return true
		}
	}
	return false
}

// InitialUsers seeds the user collection on first run. After seeding, only
// permission fields are mutated.
func InitialUsers() []User {
	allUnits := make([]string, len(Companies))
	for i, c := range Companies {
		allUnits[i] = c.ID
	}
	return []User{
		{
			ID:              "1",
			Name:            "Maurício",
			Role:            UserRoleAdmin,
			Email:           "mauricio@contaspro.com",
			Avatar:          "https://picsum.photos/seed/mauricio/100",
			AccessibleUnits: allUnits,
		},
		{
			ID:              "2",
			Name:            "Caroline",
			Role:            UserRoleUser,
			Email:           "caroline@contaspro.com",
			Avatar:          "https://picsum.photos/seed/caroline/100",
			AccessibleUnits: []string{"schroder", "corupa"},
		},
		{
			ID:              "3",
			Name:            "Johnnii",
			Role:            UserRoleUser,
			Email:           "johnnii@contaspro.com",
			Avatar:          "https://picsum.photos/seed/johnnii/100",
			AccessibleUnits: []string{"jaragua", "mr-dist"},
		},
	}
}
