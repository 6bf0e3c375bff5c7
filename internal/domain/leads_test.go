package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestMergeLeads(t *testing.T) {
	existing := []Lead{{EmailAddress: strPtr("a@x.com"), PhoneNumber: strPtr("1")}}

	t.Run("same email and phone is rejected", func(t *testing.T) {
		merged, added := MergeLeads(existing, []Lead{{EmailAddress: strPtr("a@x.com"), PhoneNumber: strPtr("1"), ViewerTitle: "CTO"}})
		assert.Equal(t, 0, added)
		assert.Equal(t, existing, merged)
	})

	t.Run("same email different phone is appended", func(t *testing.T) {
		incoming := Lead{EmailAddress: strPtr("a@x.com"), PhoneNumber: strPtr("2")}
		merged, added := MergeLeads(existing, []Lead{incoming})
		assert.Equal(t, 1, added)
		assert.Equal(t, []Lead{existing[0], incoming}, merged)
	})

	t.Run("same phone different email is appended", func(t *testing.T) {
		merged, added := MergeLeads(existing, []Lead{{EmailAddress: strPtr("b@x.com"), PhoneNumber: strPtr("1")}})
		assert.Equal(t, 1, added)
		assert.Len(t, merged, 2)
	})

	t.Run("absent fields match only absent fields", func(t *testing.T) {
		emailOnly := []Lead{{EmailAddress: strPtr("a@x.com")}}

		_, added := MergeLeads(emailOnly, []Lead{{EmailAddress: strPtr("a@x.com")}})
		assert.Equal(t, 0, added)

		_, added = MergeLeads(emailOnly, []Lead{{EmailAddress: strPtr("a@x.com"), PhoneNumber: strPtr("")}})
		assert.Equal(t, 1, added)
	})

	t.Run("duplicates inside one batch are both inserted", func(t *testing.T) {
		lead := Lead{EmailAddress: strPtr("c@x.com"), PhoneNumber: strPtr("3")}
		merged, added := MergeLeads(existing, []Lead{lead, lead})
		assert.Equal(t, 2, added)
		assert.Len(t, merged, 3)
	})

	t.Run("empty existing accepts everything", func(t *testing.T) {
		merged, added := MergeLeads(nil, []Lead{{EmailAddress: strPtr("a@x.com")}})
		assert.Equal(t, 1, added)
		assert.Len(t, merged, 1)
	})

	t.Run("empty incoming is a no-op", func(t *testing.T) {
		merged, added := MergeLeads(existing, nil)
		assert.Equal(t, 0, added)
		assert.Equal(t, existing, merged)
	})
}
