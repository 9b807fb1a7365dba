package form

import (
	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/pkg/ptr"
)

var (
	partnerTypes = []Option{
		{Value: "CHEMIST", Label: "Chemist"},
		{Value: "CLINIC", Label: "Clinic"},
		{Value: "GYM", Label: "Gym"},
	}
	genders = []Option{
		{Value: "MALE", Label: "Male"},
		{Value: "FEMALE", Label: "Female"},
		{Value: "OTHER", Label: "Other"},
	}
)

// PartnerTypes типы партнёров (используются также при загрузке прайс-листов)
func PartnerTypes() []Option {
	out := make([]Option, len(partnerTypes))
	copy(out, partnerTypes)
	return out
}

func LabSchema() Schema {
	return Schema{
		Name:  "lab",
		Title: "Add Lab",
		Fields: []Field{
			{Name: "name", Label: "Lab name", Type: TypeText, Required: true, MaxLen: 120},
			{Name: "address", Label: "Address", Type: TypeTextarea, MaxLen: 500},
			{Name: "rating", Label: "Rating", Type: TypeNumber, Min: ptr.Ptr(0.0), Max: ptr.Ptr(5.0)},
			{Name: "isActive", Label: "Active", Type: TypeCheckbox, Default: true},
		},
	}
}

func PackageSchema() Schema {
	return Schema{
		Name:  "package",
		Title: "Add Package",
		Fields: []Field{
			{Name: "name", Label: "Package name", Type: TypeText, Required: true, MaxLen: 120},
			{Name: "includedTests", Label: "Included tests", Type: TypeList, Required: true},
			{Name: "totalParams", Label: "Total parameters", Type: TypeNumber, Integer: true, Min: ptr.Ptr(0.0)},
			{Name: "mrp", Label: "MRP", Type: TypeNumber, Required: true, Min: ptr.Ptr(0.0)},
			{Name: "discounted", Label: "Discounted price", Type: TypeNumber, Min: ptr.Ptr(0.0)},
			{Name: "preparation", Label: "Preparation", Type: TypeTextarea, MaxLen: 300},
			{Name: "reportTime", Label: "Report time", Type: TypeText, MaxLen: 60},
		},
		Rules: []CrossRule{DiscountedNotAboveMRP("discounted", "mrp")},
	}
}

func TestSchema() Schema {
	return Schema{
		Name:  "test",
		Title: "Add Test",
		Fields: []Field{
			{Name: "name", Label: "Test name", Type: TypeText, Required: true, MaxLen: 120},
			{Name: "code", Label: "Code", Type: TypeText, MaxLen: 40},
			{Name: "parameters", Label: "Parameters", Type: TypeNumber, Integer: true, Min: ptr.Ptr(0.0)},
			{Name: "mrp", Label: "MRP", Type: TypeNumber, Required: true, Min: ptr.Ptr(0.0)},
			{Name: "discounted", Label: "Discounted price", Type: TypeNumber, Min: ptr.Ptr(0.0)},
			{Name: "preparation", Label: "Preparation", Type: TypeTextarea, MaxLen: 300},
			{Name: "reportTime", Label: "Report time", Type: TypeText, MaxLen: 60},
		},
		Rules: []CrossRule{DiscountedNotAboveMRP("discounted", "mrp")},
	}
}

func PromoCodeSchema() Schema {
	return Schema{
		Name:  "promo-code",
		Title: "Create Promo Code",
		Fields: []Field{
			{Name: "code", Label: "Code", Type: TypeText, Required: true, MaxLen: 32},
			{Name: "description", Label: "Description", Type: TypeTextarea, MaxLen: 300},
			{Name: "discountType", Label: "Discount type", Type: TypeSelect, Required: true,
				Default: string(domain.DiscountPercent),
				Options: []Option{
					{Value: string(domain.DiscountPercent), Label: "Percent"},
					{Value: string(domain.DiscountFixed), Label: "Fixed amount"},
				}},
			{Name: "amount", Label: "Amount", Type: TypeNumber, Required: true, Min: ptr.Ptr(0.0)},
			{Name: "maxDiscount", Label: "Max discount", Type: TypeNumber, Min: ptr.Ptr(0.0)},
			{Name: "minOrderAmount", Label: "Min order amount", Type: TypeNumber, Min: ptr.Ptr(0.0)},
			{Name: "startsAt", Label: "Starts at", Type: TypeDate},
			{Name: "expiresAt", Label: "Expires at", Type: TypeDate},
			{Name: "usageLimit", Label: "Usage limit", Type: TypeNumber, Integer: true, Min: ptr.Ptr(1.0)},
			{Name: "isActive", Label: "Active", Type: TypeCheckbox, Default: true},
		},
		Rules: []CrossRule{
			PercentAtMost100("discountType", "amount", string(domain.DiscountPercent)),
			DateNotBefore("expiresAt", "startsAt"),
		},
	}
}

func LabAdminSchema() Schema {
	return Schema{
		Name:  "lab-admin",
		Title: "Register Lab Admin",
		Fields: []Field{
			{Name: "name", Label: "Name", Type: TypeText, Required: true, MaxLen: 120},
			{Name: "email", Label: "Email", Type: TypeEmail, Required: true},
			{Name: "phone", Label: "Phone", Type: TypeTel, Pattern: "phone"},
			{Name: "password", Label: "Password", Type: TypePassword, Required: true, MaxLen: 64},
			{Name: "labId", Label: "Lab", Type: TypeSelect, Required: true},
		},
	}
}

func PhlebotomistSchema() Schema {
	return Schema{
		Name:  "phlebotomist",
		Title: "Add Phlebotomist",
		Fields: []Field{
			{Name: "firstName", Label: "First name", Type: TypeText, Required: true, MaxLen: 60},
			{Name: "lastName", Label: "Last name", Type: TypeText, MaxLen: 60},
			{Name: "mobile", Label: "Mobile", Type: TypeTel, Required: true, Pattern: "phone"},
			{Name: "alternate", Label: "Alternate mobile", Type: TypeTel, Pattern: "phone"},
			{Name: "email", Label: "Email", Type: TypeEmail},
			{Name: "labId", Label: "Lab", Type: TypeSelect, Required: true},
			{Name: "addressLine1", Label: "Address line 1", Type: TypeText, MaxLen: 200},
			{Name: "addressLine2", Label: "Address line 2", Type: TypeText, MaxLen: 200},
			{Name: "city", Label: "City", Type: TypeText, MaxLen: 80},
			{Name: "state", Label: "State", Type: TypeText, MaxLen: 80},
			{Name: "pincode", Label: "Pincode", Type: TypeText, Pattern: "pincode"},
		},
	}
}

func PartnerSchema() Schema {
	return Schema{
		Name:  "partner",
		Title: "Register Partner",
		Fields: []Field{
			{Name: "firstName", Label: "First name", Type: TypeText, Required: true, MaxLen: 60},
			{Name: "lastName", Label: "Last name", Type: TypeText, MaxLen: 60},
			{Name: "email", Label: "Email", Type: TypeEmail, Required: true},
			{Name: "mobile", Label: "Mobile", Type: TypeTel, Required: true, Pattern: "phone"},
			{Name: "dob", Label: "Date of birth", Type: TypeDate},
			{Name: "gender", Label: "Gender", Type: TypeSelect, Options: genders},
			{Name: "partnerType", Label: "Partner type", Type: TypeSelect, Required: true, Options: partnerTypes},
			{Name: "shopName", Label: "Shop name", Type: TypeText, Required: true, MaxLen: 120},
			{Name: "pincode", Label: "Pincode", Type: TypeText, Required: true, Pattern: "pincode"},
			{Name: "address", Label: "Address", Type: TypeTextarea, MaxLen: 500},
		},
	}
}

// WithOptions копия схемы с вариантами для поля select (например список лабораторий)
func (s Schema) WithOptions(field string, options []Option) Schema {
	fields := make([]Field, len(s.Fields))
	copy(fields, s.Fields)
	for i := range fields {
		if fields[i].Name == field {
			fields[i].Options = options
		}
	}
	s.Fields = fields
	return s
}
