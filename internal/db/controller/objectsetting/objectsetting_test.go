package objectsetting

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/setstore/setstore/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.ObjectSetting{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// seedRows inserts test data into the database.
func seedRows(t *testing.T, db *gorm.DB, rows []models.ObjectSetting) {
	t.Helper()
	for _, row := range rows {
		err := db.Create(&row).Error
		require.NoError(t, err, "failed to seed test data")
	}
}

func TestGetForObject(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		objectType    string
		objectID      string
		seedData      []models.ObjectSetting
		expectedError error
		expectedNames []string
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			objectType:    "Cart",
			objectID:      "42",
			expectedError: ErrDBNil,
		},
		{
			name:       "no rows",
			dbParam:    db,
			objectType: "Cart",
			objectID:   "42",
		},
		{
			name:       "rows for the object only",
			dbParam:    db,
			objectType: "Cart",
			objectID:   "42",
			seedData: []models.ObjectSetting{
				{Name: "MaxItems", ObjectType: "Cart", ObjectID: "42", Value: []byte(`["10"]`)},
				{Name: "Currency", ObjectType: "Cart", ObjectID: "42", Value: []byte(`["EUR"]`)},
				{Name: "MaxItems", ObjectType: "Cart", ObjectID: "43", Value: []byte(`["99"]`)},
				{Name: "MaxItems", ObjectType: "Order", ObjectID: "42", Value: []byte(`["5"]`)},
			},
			expectedNames: []string{"MaxItems", "Currency"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM object_settings")
			}

			if tc.seedData != nil {
				seedRows(t, tc.dbParam, tc.seedData)
			}

			rows, err := GetForObject(tc.dbParam, tc.objectType, tc.objectID)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)

			names := make([]string, 0, len(rows))
			for _, row := range rows {
				names = append(names, row.Name)
			}
			assert.ElementsMatch(t, tc.expectedNames, names)
		})
	}
}

func TestGetForObjects(t *testing.T) {
	db := setupTestDB(t)

	seedRows(t, db, []models.ObjectSetting{
		{Name: "MaxItems", ObjectType: "Cart", ObjectID: "42", Value: []byte(`["10"]`)},
		{Name: "MaxItems", ObjectType: "Cart", ObjectID: "43", Value: []byte(`["20"]`)},
		{Name: "MaxItems", ObjectType: "Order", ObjectID: "42", Value: []byte(`["5"]`)},
		{Name: "MaxItems", ObjectType: "Product", ObjectID: "9", Value: []byte(`["1"]`)},
	})

	_, err := GetForObjects(nil, []string{"Cart"}, []string{"42"})
	require.ErrorIs(t, err, ErrDBNil)

	rows, err := GetForObjects(db, []string{"Cart", "Order"}, []string{"42", "43"})
	require.NoError(t, err)
	assert.Len(t, rows, 3, "Product and unknown ids must not match")
}

func TestGetByNames(t *testing.T) {
	db := setupTestDB(t)

	seedRows(t, db, []models.ObjectSetting{
		{Name: "MaxItems", ObjectType: "Cart", ObjectID: "42", Value: []byte(`["10"]`)},
		{Name: "MaxItems", ObjectType: "Cart", ObjectID: "43", Value: []byte(`["20"]`)},
		{Name: "Currency", ObjectType: "Cart", ObjectID: "42", Value: []byte(`["EUR"]`)},
	})

	_, err := GetByNames(nil, []string{"MaxItems"})
	require.ErrorIs(t, err, ErrDBNil)

	rows, err := GetByNames(db, []string{"MaxItems"})
	require.NoError(t, err)
	assert.Len(t, rows, 2, "lookup by name spans all objects")
}

func TestGetByIdentity(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		settingName   string
		objectType    string
		objectID      string
		seedData      []models.ObjectSetting
		expectedError error
		expectedValue []byte
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			settingName:   "MaxItems",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty name",
			dbParam:       db,
			settingName:   "",
			expectedError: ErrObjectSettingNameEmpty,
		},
		{
			name:          "not found",
			dbParam:       db,
			settingName:   "MaxItems",
			objectType:    "Cart",
			objectID:      "42",
			expectedError: ErrObjectSettingNotFound,
		},
		{
			name:        "successful lookup",
			dbParam:     db,
			settingName: "MaxItems",
			objectType:  "Cart",
			objectID:    "42",
			seedData: []models.ObjectSetting{
				{Name: "MaxItems", ObjectType: "Cart", ObjectID: "42", Value: []byte(`["10"]`)},
				{Name: "MaxItems", ObjectType: "Cart", ObjectID: "43", Value: []byte(`["20"]`)},
			},
			expectedValue: []byte(`["10"]`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM object_settings")
			}

			if tc.seedData != nil {
				seedRows(t, tc.dbParam, tc.seedData)
			}

			row, err := GetByIdentity(tc.dbParam, tc.settingName, tc.objectType, tc.objectID)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, row)
			} else {
				require.NoError(t, err)
				require.NotNil(t, row)
				assert.Equal(t, tc.expectedValue, row.Value)
			}
		})
	}
}

func TestSave(t *testing.T) {
	db := setupTestDB(t)

	err := Save(nil, &models.ObjectSetting{Name: "MaxItems"})
	require.ErrorIs(t, err, ErrDBNil)

	err = Save(db, &models.ObjectSetting{})
	require.ErrorIs(t, err, ErrObjectSettingNameEmpty)

	// insert
	row := &models.ObjectSetting{Name: "MaxItems", ObjectType: "Cart", ObjectID: "42", Value: []byte(`["10"]`)}
	require.NoError(t, Save(db, row))
	assert.NotZero(t, row.ID)

	// patch in place keeps the row key
	row.Value = []byte(`["20"]`)
	require.NoError(t, Save(db, row))

	stored, err := GetByIdentity(db, "MaxItems", "Cart", "42")
	require.NoError(t, err)
	assert.Equal(t, row.ID, stored.ID)
	assert.Equal(t, []byte(`["20"]`), stored.Value)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	seedRows(t, db, []models.ObjectSetting{
		{Name: "MaxItems", ObjectType: "Cart", ObjectID: "42", Value: []byte(`["10"]`)},
	})

	err := Delete(nil, "MaxItems", "Cart", "42")
	require.ErrorIs(t, err, ErrDBNil)

	err = Delete(db, "", "Cart", "42")
	require.ErrorIs(t, err, ErrObjectSettingNameEmpty)

	err = Delete(db, "MaxItems", "Cart", "99")
	require.ErrorIs(t, err, ErrObjectSettingNotFound)

	require.NoError(t, Delete(db, "MaxItems", "Cart", "42"))

	_, err = GetByIdentity(db, "MaxItems", "Cart", "42")
	require.ErrorIs(t, err, ErrObjectSettingNotFound)
}
