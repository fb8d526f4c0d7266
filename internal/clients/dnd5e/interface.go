package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e -source=interface.go

// Client exposes the slice of the D&D 5e API the bot uses: reference
// lists for seeding the race and class tables
type Client interface {
	ListRaces() ([]string, error)
	ListClasses() ([]string, error)
}
