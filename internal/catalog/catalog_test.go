package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_All(t *testing.T) {
	c := New()

	all := c.All()
	require.Len(t, all, 8)

	// Порядок каталога соответствует порядку отображения
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "TAGLIO UOMO", all[0].Name)
	assert.Equal(t, "8", all[7].ID)
	assert.Equal(t, "TRATTAMENTO", all[7].Name)

	// Возвращается копия, изменение результата не трогает каталог
	all[0].Name = "changed"
	assert.Equal(t, "TAGLIO UOMO", c.All()[0].Name)
}

func TestCatalog_GetByID(t *testing.T) {
	c := New()

	svc, err := c.GetByID("3")
	require.NoError(t, err)
	assert.Equal(t, "TAGLIO BIMBO", svc.Name)
	require.NotNil(t, svc.Subtitle)
	assert.Equal(t, "BIMBO SOTTO I 10 ANNI", *svc.Subtitle)
	assert.Equal(t, 20, svc.DurationMinutes)

	_, err = c.GetByID("99")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCatalog_GetByIDs(t *testing.T) {
	c := New()

	services, err := c.GetByIDs([]string{"2", "1"})
	require.NoError(t, err)
	require.Len(t, services, 2)

	// Порядок запроса сохраняется
	assert.Equal(t, "SAGOMATURA BARBA + TAGLIO", services[0].Name)
	assert.Equal(t, "TAGLIO UOMO", services[1].Name)

	_, err = c.GetByIDs([]string{"1", "99"})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
