package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"townscoffee/internal/domain/entity"
	"townscoffee/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

const sampleCatalog = `
towns:
  - id: t1
    name: Salento
    department: Quindio
    latitude: 4.637
    longitude: -75.570
    coffeeCount: 2
    farmerCount: 1
    createdDate: "2024-01-15"
  - id: t2
    name: Jardin
    department: Antioquia
    isActive: false
    createdDate: "2024-02-01T10:00:00Z"
farmers:
  - id: f1
    userId: u1
    farmName: La Esperanza
    townId: t1
    latitude: 4.64
    longitude: -75.57
    status: approved
    verificationDate: "2024-03-01T00:00:00Z"
  - id: f2
    userId: u2
    farmName: El Mirador
    townId: t1
coffees:
  - id: c1
    name: Castillo Natural
    type: arabica
    roastLevel: very-dark
    pricePerUnit: "42000"
    farmerId: f1
    townId: t1
    notes: [chocolate, panela]
`

func TestParse(t *testing.T) {
	catalog, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)

	require.Len(t, catalog.Towns, 2)
	salento := catalog.Towns[0]
	assert.Equal(t, "Salento", salento.Name)
	assert.InDelta(t, 4.637, salento.Latitude(), 1e-9)
	assert.InDelta(t, -75.570, salento.Longitude(), 1e-9)
	assert.True(t, salento.IsActive)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), salento.CreatedDate)
	assert.False(t, catalog.Towns[1].IsActive)
	assert.Equal(t, time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC), catalog.Towns[1].CreatedDate)

	require.Len(t, catalog.Farmers, 2)
	assert.Equal(t, entity.FarmerStatusApproved, catalog.Farmers[0].Status)
	require.NotNil(t, catalog.Farmers[0].VerificationDate)
	assert.Equal(t, 2024, catalog.Farmers[0].VerificationDate.Year())
	assert.Equal(t, entity.FarmerStatusPending, catalog.Farmers[1].Status)
	assert.Nil(t, catalog.Farmers[1].VerificationDate)

	require.Len(t, catalog.Coffees, 1)
	coffee := catalog.Coffees[0]
	assert.Equal(t, entity.CoffeeTypeArabica, coffee.Type)
	assert.Equal(t, entity.RoastLevelVeryDark, coffee.RoastLevel)
	assert.InDelta(t, 42000, coffee.PricePerUnit, 1e-9)
	assert.Equal(t, []string{"chocolate", "panela"}, coffee.Notes)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		wantDecode string
	}{
		{
			name:       "unknown roast level",
			doc:        "coffees:\n  - id: c1\n    type: arabica\n    roastLevel: tostado\n",
			wantDecode: "tostado",
		},
		{
			name:       "unknown coffee type",
			doc:        "coffees:\n  - id: c1\n    type: liberica\n    roastLevel: dark\n",
			wantDecode: "liberica",
		},
		{
			name:       "legacy farmer status",
			doc:        "farmers:\n  - id: f1\n    status: Aprobado\n",
			wantDecode: "Aprobado",
		},
		{
			name: "unknown field",
			doc:  "towns:\n  - id: t1\n    nombre: Salento\n",
		},
		{
			name: "bad date",
			doc:  "towns:\n  - id: t1\n    createdDate: yesterday\n",
		},
		{
			name: "broken yaml",
			doc:  "towns: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)

			if tt.wantDecode != "" {
				var decodeErr *entity.DecodeError
				require.ErrorAs(t, err, &decodeErr)
				assert.Equal(t, tt.wantDecode, decodeErr.Value)
			}
		})
	}
}

func TestRead(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	data := []byte(sampleCatalog)
	require.NoError(t, bucket.WriteAll(ctx, "catalogs/colombia.yaml", data, nil))

	catalog, source, err := Read(ctx, bucket, "catalogs/colombia.yaml")
	require.NoError(t, err)
	assert.Len(t, catalog.Towns, 2)
	assert.Equal(t, int64(len(data)), source.Size)
	assert.Equal(t, util.Checksum(data), source.Checksum)
	assert.Contains(t, source.String(), "catalogs/colombia.yaml")

	_, _, err = Read(ctx, bucket, "catalogs/missing.yaml")
	require.ErrorIs(t, err, ErrCatalogNotFound)
}

func TestLoad_FileBucket(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.yaml"), []byte(sampleCatalog), 0o600))

	catalog, source, err := Load(context.Background(), "file://"+dir, "catalog.yaml")
	require.NoError(t, err)
	assert.Len(t, catalog.Coffees, 1)
	assert.Equal(t, "catalog.yaml", source.Key)

	_, _, err = Load(context.Background(), "nope://bucket", "catalog.yaml")
	require.Error(t, err)
}
