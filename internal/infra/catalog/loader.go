// Package catalog reads directory catalogs (towns, farmers, coffees) from a
// blob bucket and decodes them into domain entities.
package catalog

import (
	"context"
	"reflect"
	"time"

	"townscoffee/internal/domain/entity"
	"townscoffee/internal/errors"
	"townscoffee/internal/util"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/paulmach/orb"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	"gocloud.dev/gcerrors"
)

// ErrCatalogNotFound is returned when the catalog key does not exist in the bucket.
var ErrCatalogNotFound = errors.New("catalog object not found")

// Source describes the object a catalog was read from.
type Source struct {
	Key      string
	Size     int64
	Checksum string
	ModTime  time.Time
}

// String renders the source for log lines.
func (s *Source) String() string {
	sum := s.Checksum
	if len(sum) > 12 {
		sum = sum[:12]
	}

	return s.Key + " (" + util.FormatBytes(s.Size) + ", sha256 " + sum + ")"
}

// Load reads key from the bucket at bucketURL and decodes it.
func Load(ctx context.Context, bucketURL, key string) (*entity.Catalog, *Source, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}
	defer bucket.Close()

	return Read(ctx, bucket, key)
}

// Read reads key from an already opened bucket and decodes it.
func Read(ctx context.Context, bucket *blob.Bucket, key string) (*entity.Catalog, *Source, error) {
	attrs, err := bucket.Attributes(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil, errors.Wrap(ErrCatalogNotFound, key)
		}

		return nil, nil, errors.Wrapf(err, "failed to stat %s", key)
	}

	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to read %s", key)
	}

	catalog, err := Parse(data)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to parse %s", key)
	}

	return catalog, &Source{
		Key:      key,
		Size:     attrs.Size,
		Checksum: util.Checksum(data),
		ModTime:  attrs.ModTime,
	}, nil
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*entity.Catalog, error) {
	raw, err := yaml.Parser().Unmarshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "invalid yaml")
	}

	var doc document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		TagName:          "yaml",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       stringToTimeHook,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, errors.Wrap(err, "invalid catalog layout")
	}

	return doc.toEntity()
}

// stringToTimeHook accepts RFC 3339 timestamps and plain dates.
func stringToTimeHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeFor[time.Time]() {
		return data, nil
	}

	value := data.(string)
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}

	return nil, errors.Errorf("invalid date %q", value)
}

type document struct {
	Towns   []townRecord   `yaml:"towns"`
	Farmers []farmerRecord `yaml:"farmers"`
	Coffees []coffeeRecord `yaml:"coffees"`
}

type townRecord struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Department  string    `yaml:"department"`
	Description string    `yaml:"description"`
	PostalCode  string    `yaml:"postalCode"`
	Latitude    float64   `yaml:"latitude"`
	Longitude   float64   `yaml:"longitude"`
	ImageURL    string    `yaml:"imageUrl"`
	CoffeeCount int       `yaml:"coffeeCount"`
	FarmerCount int       `yaml:"farmerCount"`
	IsActive    *bool     `yaml:"isActive"`
	CreatedDate time.Time `yaml:"createdDate"`
}

type farmerRecord struct {
	ID                 string     `yaml:"id"`
	UserID             string     `yaml:"userId"`
	FarmName           string     `yaml:"farmName"`
	FarmDescription    string     `yaml:"farmDescription"`
	TownID             string     `yaml:"townId"`
	Hectares           float64    `yaml:"hectares"`
	Altitude           int        `yaml:"altitude"`
	CoffeeTypes        []string   `yaml:"coffeeTypes"`
	Certifications     []string   `yaml:"certifications"`
	ImageURL           string     `yaml:"imageUrl"`
	Latitude           float64    `yaml:"latitude"`
	Longitude          float64    `yaml:"longitude"`
	Status             string     `yaml:"status"`
	AnnualProduction   int        `yaml:"annualProduction"`
	MainContact        string     `yaml:"mainContact"`
	ContactPhone       string     `yaml:"contactPhone"`
	ContactEmail       string     `yaml:"contactEmail"`
	YearsOfExperience  int        `yaml:"yearsOfExperience"`
	CultivationMethods []string   `yaml:"cultivationMethods"`
	Rating             float64    `yaml:"rating"`
	ProductCount       int        `yaml:"productCount"`
	IsVerified         bool       `yaml:"isVerified"`
	ApplicationDate    time.Time  `yaml:"applicationDate"`
	VerificationDate   *time.Time `yaml:"verificationDate"`
	RejectionReason    string     `yaml:"rejectionReason"`
}

type coffeeRecord struct {
	ID                string    `yaml:"id"`
	Name              string    `yaml:"name"`
	Description       string    `yaml:"description"`
	Type              string    `yaml:"type"`
	RoastLevel        string    `yaml:"roastLevel"`
	PricePerUnit      float64   `yaml:"pricePerUnit"`
	AvailableQuantity int       `yaml:"availableQuantity"`
	ImageURL          string    `yaml:"imageUrl"`
	FarmerID          string    `yaml:"farmerId"`
	TownID            string    `yaml:"townId"`
	Rating            float64   `yaml:"rating"`
	Notes             []string  `yaml:"notes"`
	Altitude          int       `yaml:"altitude"`
	Varieties         []string  `yaml:"varieties"`
	Certifications    []string  `yaml:"certifications"`
	CreatedDate       time.Time `yaml:"createdDate"`
}

func (d *document) toEntity() (*entity.Catalog, error) {
	catalog := &entity.Catalog{
		Towns:   make([]*entity.Town, 0, len(d.Towns)),
		Farmers: make([]*entity.CoffeeFarmer, 0, len(d.Farmers)),
		Coffees: make([]*entity.Coffee, 0, len(d.Coffees)),
	}

	for _, r := range d.Towns {
		// Towns are active unless the record says otherwise.
		active := r.IsActive == nil || *r.IsActive
		catalog.Towns = append(catalog.Towns, &entity.Town{
			ID:          r.ID,
			Name:        r.Name,
			Department:  r.Department,
			Description: r.Description,
			PostalCode:  r.PostalCode,
			Location:    orb.Point{r.Longitude, r.Latitude},
			ImageURL:    r.ImageURL,
			CoffeeCount: r.CoffeeCount,
			FarmerCount: r.FarmerCount,
			IsActive:    active,
			CreatedDate: r.CreatedDate,
		})
	}

	for i, r := range d.Farmers {
		status := entity.FarmerStatusPending
		if r.Status != "" {
			parsed, err := entity.ParseFarmerStatus(r.Status)
			if err != nil {
				return nil, errors.Wrapf(err, "farmer #%d", i)
			}
			status = parsed
		}
		catalog.Farmers = append(catalog.Farmers, &entity.CoffeeFarmer{
			ID:                 r.ID,
			UserID:             r.UserID,
			FarmName:           r.FarmName,
			FarmDescription:    r.FarmDescription,
			TownID:             r.TownID,
			Hectares:           r.Hectares,
			Altitude:           r.Altitude,
			CoffeeTypes:        r.CoffeeTypes,
			Certifications:     r.Certifications,
			ImageURL:           r.ImageURL,
			Location:           orb.Point{r.Longitude, r.Latitude},
			Status:             status,
			AnnualProduction:   r.AnnualProduction,
			MainContact:        r.MainContact,
			ContactPhone:       r.ContactPhone,
			ContactEmail:       r.ContactEmail,
			YearsOfExperience:  r.YearsOfExperience,
			CultivationMethods: r.CultivationMethods,
			Rating:             r.Rating,
			ProductCount:       r.ProductCount,
			IsVerified:         r.IsVerified,
			ApplicationDate:    r.ApplicationDate,
			VerificationDate:   r.VerificationDate,
			RejectionReason:    r.RejectionReason,
		})
	}

	for i, r := range d.Coffees {
		coffeeType, err := entity.ParseCoffeeType(r.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "coffee #%d", i)
		}
		roast, err := entity.ParseRoastLevel(r.RoastLevel)
		if err != nil {
			return nil, errors.Wrapf(err, "coffee #%d", i)
		}
		catalog.Coffees = append(catalog.Coffees, &entity.Coffee{
			ID:                r.ID,
			Name:              r.Name,
			Description:       r.Description,
			Type:              coffeeType,
			RoastLevel:        roast,
			PricePerUnit:      r.PricePerUnit,
			AvailableQuantity: r.AvailableQuantity,
			ImageURL:          r.ImageURL,
			FarmerID:          r.FarmerID,
			TownID:            r.TownID,
			Rating:            r.Rating,
			Notes:             r.Notes,
			Altitude:          r.Altitude,
			Varieties:         r.Varieties,
			Certifications:    r.Certifications,
			CreatedDate:       r.CreatedDate,
		})
	}

	return catalog, nil
}
