package repository

import (
	"gorm.io/gorm"

	"payment-config-service/internal/models"
)

// SeedReferenceData inserts the baseline status and lookup rows the admin
// panel depends on. It is idempotent; existing rows are left untouched.
func SeedReferenceData(db *gorm.DB) error {
	merchantStatuses := []models.MerchantStatus{
		{NameEn: "Active", NameAr: "نشط"},
		{NameEn: "Suspended", NameAr: "موقوف"},
		{NameEn: "Pending Review", NameAr: "قيد المراجعة"},
		{NameEn: "Closed", NameAr: "مغلق"},
	}
	for i := range merchantStatuses {
		if err := db.Where("name_en = ?", merchantStatuses[i].NameEn).
			FirstOrCreate(&merchantStatuses[i]).Error; err != nil {
			return err
		}
	}

	pspStatuses := []models.PspStatus{
		{NameEn: "Live", NameAr: "مفعل"},
		{NameEn: "Sandbox", NameAr: "تجريبي"},
		{NameEn: "Disabled", NameAr: "معطل"},
	}
	for i := range pspStatuses {
		if err := db.Where("name_en = ?", pspStatuses[i].NameEn).
			FirstOrCreate(&pspStatuses[i]).Error; err != nil {
			return err
		}
	}

	userStatuses := []models.UserStatus{
		{NameEn: "Active", NameAr: "نشط"},
		{NameEn: "Inactive", NameAr: "غير نشط"},
		{NameEn: "Locked", NameAr: "مقفل"},
	}
	for i := range userStatuses {
		if err := db.Where("name_en = ?", userStatuses[i].NameEn).
			FirstOrCreate(&userStatuses[i]).Error; err != nil {
			return err
		}
	}

	invoiceTypes := []models.InvoiceType{
		{NameEn: "One Time", NameAr: "مرة واحدة"},
		{NameEn: "Recurring", NameAr: "متكرر"},
		{NameEn: "Installment", NameAr: "أقساط"},
	}
	for i := range invoiceTypes {
		if err := db.Where("name_en = ?", invoiceTypes[i].NameEn).
			FirstOrCreate(&invoiceTypes[i]).Error; err != nil {
			return err
		}
	}

	currencies := []models.Currency{
		{NameEn: "Saudi Riyal", NameAr: "ريال سعودي", Code: "SAR", Symbol: "ر.س", Precision: 2},
		{NameEn: "US Dollar", NameAr: "دولار أمريكي", Code: "USD", Symbol: "$", Precision: 2},
		{NameEn: "UAE Dirham", NameAr: "درهم إماراتي", Code: "AED", Symbol: "د.إ", Precision: 2},
		{NameEn: "Kuwaiti Dinar", NameAr: "دينار كويتي", Code: "KWD", Symbol: "د.ك", Precision: 3},
	}
	for i := range currencies {
		if err := db.Where("code = ?", currencies[i].Code).
			FirstOrCreate(&currencies[i]).Error; err != nil {
			return err
		}
	}

	languages := []models.Language{
		{Name: "English", Code: "en"},
		{Name: "Arabic", Code: "ar", IsRTL: true},
	}
	for i := range languages {
		if err := db.Where("code = ?", languages[i].Code).
			FirstOrCreate(&languages[i]).Error; err != nil {
			return err
		}
	}

	countries := []models.Country{
		{NameEn: "Saudi Arabia", NameAr: "المملكة العربية السعودية", ISO2: "SA", ISO3: "SAU", PhoneCode: "+966"},
		{NameEn: "United Arab Emirates", NameAr: "الإمارات العربية المتحدة", ISO2: "AE", ISO3: "ARE", PhoneCode: "+971"},
		{NameEn: "Kuwait", NameAr: "الكويت", ISO2: "KW", ISO3: "KWT", PhoneCode: "+965"},
		{NameEn: "Bahrain", NameAr: "البحرين", ISO2: "BH", ISO3: "BHR", PhoneCode: "+973"},
		{NameEn: "Qatar", NameAr: "قطر", ISO2: "QA", ISO3: "QAT", PhoneCode: "+974"},
		{NameEn: "Oman", NameAr: "عمان", ISO2: "OM", ISO3: "OMN", PhoneCode: "+968"},
		{NameEn: "Egypt", NameAr: "مصر", ISO2: "EG", ISO3: "EGY", PhoneCode: "+20"},
		{NameEn: "Jordan", NameAr: "الأردن", ISO2: "JO", ISO3: "JOR", PhoneCode: "+962"},
	}
	for i := range countries {
		if err := db.Where("iso2 = ?", countries[i].ISO2).
			FirstOrCreate(&countries[i]).Error; err != nil {
			return err
		}
	}

	return nil
}
