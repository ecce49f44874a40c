package domain

// Account is a demo recipient account on the notification service.
// Fields are ordered to minimize memory padding.
type Account struct {
	ID    string
	Label string
	Email string
}

// DemoAccounts are the fixture accounts the demo is seeded against.
// The configured user id selects which one is "current".
var DemoAccounts = []Account{
	{ID: "f47ac10b-58cc-4372-a567-0e02b2c3d479", Label: "Brett Kertzmann", Email: "brett@test.com"},
	{ID: "60f7a8a0-9f70-4c9f-9c3a-9d5a8f5e0e1d", Label: "Angie Grady", Email: "angie@test.com"},
	{ID: "3b241101-e2bb-4255-8caf-4136c566a962", Label: "Katie Osinski", Email: "katie@test.com"},
	{ID: "9d7b5e57-ce8d-4f7c-9d3e-7b9e0c7b1d4a", Label: "Abel Rowe", Email: "abel@test.com"},
}

// FindAccount returns the demo account with the given id, or nil.
func FindAccount(id string) *Account {
	for i := range DemoAccounts {
		if DemoAccounts[i].ID == id {
			return &DemoAccounts[i]
		}
	}
	return nil
}

// CurrentAccount returns the account selected by the given user id,
// falling back to the first demo account when the id matches nothing.
func CurrentAccount(userID string) Account {
	if acc := FindAccount(userID); acc != nil {
		return *acc
	}
	return DemoAccounts[0]
}
