package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lingEric/exceltool/pkg/exceltool/models"
)

func TestBuildFromTranslations(t *testing.T) {
	table := models.TranslationTable{
		2: {"M": "Male", "F": "Female", "U": "Female"},
		0: {},
	}

	got := Build(table, nil, 1048575)
	assert.Equal(t, []models.ValidationDescriptor{
		{Column: 2, AllowedValues: []string{"Female", "Male"}, RowFrom: 2, RowTo: 1048575},
	}, got)
}

func TestBuildListsWin(t *testing.T) {
	table := models.TranslationTable{1: {"a": "A"}, 3: {"x": "X"}}
	lists := map[int][]string{
		1: {"Yes", "No", "Yes"},
		0: {"red"},
		4: nil,
	}

	got := Build(table, lists, 99)
	assert.Equal(t, []models.ValidationDescriptor{
		{Column: 0, AllowedValues: []string{"red"}, RowFrom: 2, RowTo: 99},
		{Column: 1, AllowedValues: []string{"Yes", "No"}, RowFrom: 2, RowTo: 99},
		{Column: 3, AllowedValues: []string{"X"}, RowFrom: 2, RowTo: 99},
	}, got)
}

func TestBuildEmpty(t *testing.T) {
	assert.Empty(t, Build(nil, nil, 10))
}
