package seeder

func Defaults() []Seeder {
	return []Seeder{
		SchemaSeeder{},
		SkillsSeeder{},
		CandidatesSeeder{},
		ProjectsSeeder{},
	}
}
