package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	t.Setenv(LangEnvVar, "")

	tests := []struct {
		lang string
		id   string
		want string
	}{
		{"en", PickerTitle, "Select Country"},
		{"de", PickerTitle, "Land auswählen"},
		{"fr-CA", Cancel, "Annuler"},
		{"es", SearchPlaceholder, "Buscar países..."},
		{"ja", PhoneNumberLabel, "Mobile number"},
		{"", Placeholder, "(415) 555-0132"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.lang).Get(tt.id))
		})
	}
}

func TestEnvironmentLanguage(t *testing.T) {
	t.Setenv(LangEnvVar, "de")
	assert.Equal(t, "Abbrechen", New().Get(Cancel))
	assert.Equal(t, "Annuler", New("fr").Get(Cancel), "explicit language wins")
}

func TestUnknownID(t *testing.T) {
	assert.Equal(t, "NoSuchMessage", New("en").Get("NoSuchMessage"))
}

func TestOr(t *testing.T) {
	l := New("en")
	assert.Equal(t, "Phone", l.Or("Phone", Placeholder))
	assert.Equal(t, "(415) 555-0132", l.Or("  ", Placeholder))
}

func TestLanguages(t *testing.T) {
	assert.ElementsMatch(t, []string{"en", "de", "fr", "es"}, Languages())
}

func TestHints(t *testing.T) {
	assert.Equal(t, "Back", New("en").Get(HintBack))
	assert.Equal(t, "Zurück", New("de").Get(HintBack))
	assert.Equal(t, "Pays", New("fr").Get(HintCountry))
	assert.Equal(t, "Listo", New("es").Get(HintDone))
}
