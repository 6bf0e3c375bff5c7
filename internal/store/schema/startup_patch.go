package schema

import "github.com/feral-file/launchpad/internal/domain"

// StartupPatch lists the owner-editable fields of a startup.
// A nil field leaves the stored value untouched.
type StartupPatch struct {
	RoutingName  *string
	Name         *string
	Tagline      *string
	Description  *string
	WebsiteURL   *string
	Location     *string
	TeamSize     *int
	FoundedYear  *int
	FundingStage *string
	Sector       *string
	Category     *string
	Industry     *string
	Status       *domain.StartupStatus

	LogoURL        *string
	LogoStorageID  *string
	ImageURL       *string
	ImageStorageID *string

	DeckURL       *string
	DeckStorageID *string
	ShowDeck      *bool

	DemoURL       *string
	DemoStorageID *string
	ShowDemo      *bool
}

// ResolveFiles derives the url of every file slot that names a storage id,
// so a stored blob is always paired with its own url. An explicit empty
// storage id without a url clears the slot.
func (p *StartupPatch) ResolveFiles(resolve func(storageID string) (string, error)) error {
	slots := []struct {
		url       **string
		storageID *string
	}{
		{&p.LogoURL, p.LogoStorageID},
		{&p.ImageURL, p.ImageStorageID},
		{&p.DeckURL, p.DeckStorageID},
		{&p.DemoURL, p.DemoStorageID},
	}

	for _, slot := range slots {
		if slot.storageID == nil {
			continue
		}
		if *slot.storageID == "" {
			if *slot.url == nil {
				empty := ""
				*slot.url = &empty
			}
			continue
		}

		url, err := resolve(*slot.storageID)
		if err != nil {
			return err
		}
		*slot.url = &url
	}
	return nil
}

// ReplacedStorageIDs returns the storage ids prev held that next no longer
// holds in the same slot
func ReplacedStorageIDs(prev, next *Startup) []string {
	var replaced []string
	before, after := prev.StorageIDs(), next.StorageIDs()
	for i := range before {
		if before[i] != "" && before[i] != after[i] {
			replaced = append(replaced, before[i])
		}
	}
	return replaced
}

// Apply merges the set fields onto s
func (p StartupPatch) Apply(s *Startup) {
	setString(&s.RoutingName, p.RoutingName)
	setString(&s.Name, p.Name)
	setString(&s.Tagline, p.Tagline)
	setString(&s.Description, p.Description)
	setString(&s.WebsiteURL, p.WebsiteURL)
	setString(&s.Location, p.Location)
	if p.TeamSize != nil {
		s.TeamSize = *p.TeamSize
	}
	if p.FoundedYear != nil {
		s.FoundedYear = *p.FoundedYear
	}
	setString(&s.FundingStage, p.FundingStage)
	setString(&s.Sector, p.Sector)
	setString(&s.Category, p.Category)
	setString(&s.Industry, p.Industry)
	if p.Status != nil {
		s.Status = *p.Status
	}

	setFile(&s.LogoURL, &s.LogoStorageID, p.LogoURL, p.LogoStorageID)
	setFile(&s.ImageURL, &s.ImageStorageID, p.ImageURL, p.ImageStorageID)
	setFile(&s.DeckURL, &s.DeckStorageID, p.DeckURL, p.DeckStorageID)
	setFile(&s.DemoURL, &s.DemoStorageID, p.DemoURL, p.DemoStorageID)

	if p.ShowDeck != nil {
		s.ShowDeck = *p.ShowDeck
	}
	if p.ShowDemo != nil {
		s.ShowDemo = *p.ShowDemo
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// setFile keeps url and storage id consistent: a new url without a storage id
// clears the old storage id so a released blob is never referenced again
func setFile(url, storageID *string, newURL, newStorageID *string) {
	if newURL != nil && *newURL != *url {
		*url = *newURL
		*storageID = ""
	}
	if newStorageID != nil {
		*storageID = *newStorageID
	}
}
