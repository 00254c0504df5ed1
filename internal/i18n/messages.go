package i18n

import (
	"fmt"

	"storefront-service/internal/models"
)

// MessageID names a translatable storefront string
type MessageID string

const (
	MsgAllProducts      MessageID = "allProducts"
	MsgProductFallback  MessageID = "productFallback"
	MsgProductUnnamed   MessageID = "productUnnamed"
	MsgNoCategory       MessageID = "noCategory"
	MsgNoProducts       MessageID = "noProductsFound"
	MsgLoadFailed       MessageID = "loadFailed"
	MsgProductNotFound  MessageID = "productNotFound"
	MsgSessionNotFound  MessageID = "sessionNotFound"
	MsgInvalidAction    MessageID = "invalidAction"
	MsgInvalidRequest   MessageID = "invalidRequest"
	MsgQuoteRequested   MessageID = "quoteRequested"
	MsgExportFailed     MessageID = "exportFailed"
	MsgSortDefault      MessageID = "sort.none"
	MsgSortNameAsc      MessageID = "sort.name_asc"
	MsgSortNameDesc     MessageID = "sort.name_desc"
	MsgSortNewest       MessageID = "sort.newest"
	MsgSortOldest       MessageID = "sort.oldest"
	MsgNavHome          MessageID = "nav.home"
	MsgNavAbout         MessageID = "nav.about"
	MsgNavProducts      MessageID = "nav.products"
	MsgNavIndustries    MessageID = "nav.industries"
	MsgNavContact       MessageID = "nav.contact"
	MsgNavRequestQuote  MessageID = "nav.requestQuote"
	MsgExportSheetTitle MessageID = "export.sheet"
	MsgExportName       MessageID = "export.name"
	MsgExportCategory   MessageID = "export.category"
	MsgExportImage      MessageID = "export.image"
	MsgExportCreated    MessageID = "export.created"
)

var catalog = map[models.Locale]map[MessageID]string{
	models.LocaleEnglish: {
		MsgAllProducts:      "All Products",
		MsgProductFallback:  "Product %d",
		MsgProductUnnamed:   "Product",
		MsgNoCategory:       "No Category",
		MsgNoProducts:       "No products found",
		MsgLoadFailed:       "Failed to load products. Please try again later.",
		MsgProductNotFound:  "Product not found",
		MsgSessionNotFound:  "Browse session not found",
		MsgInvalidAction:    "Invalid browse action",
		MsgInvalidRequest:   "Invalid request",
		MsgQuoteRequested:   "Quote requested for: %s",
		MsgExportFailed:     "Failed to export products",
		MsgSortDefault:      "Sort by",
		MsgSortNameAsc:      "A to Z",
		MsgSortNameDesc:     "Z to A",
		MsgSortNewest:       "Newest",
		MsgSortOldest:       "Oldest",
		MsgNavHome:          "Home",
		MsgNavAbout:         "About Us",
		MsgNavProducts:      "Products",
		MsgNavIndustries:    "Industries",
		MsgNavContact:       "Contact Us",
		MsgNavRequestQuote:  "Request a Quote",
		MsgExportSheetTitle: "Products",
		MsgExportName:       "Name",
		MsgExportCategory:   "Category",
		MsgExportImage:      "Image",
		MsgExportCreated:    "Created",
	},
	models.LocaleArabic: {
		MsgAllProducts:      "جميع المنتجات",
		MsgProductFallback:  "منتج %d",
		MsgProductUnnamed:   "منتج",
		MsgNoCategory:       "لا تصنيف",
		MsgNoProducts:       "لم يتم العثور على منتجات",
		MsgLoadFailed:       "فشل تحميل المنتجات. يرجى المحاولة لاحقاً.",
		MsgProductNotFound:  "المنتج غير موجود",
		MsgSessionNotFound:  "جلسة التصفح غير موجودة",
		MsgInvalidAction:    "إجراء تصفح غير صالح",
		MsgInvalidRequest:   "طلب غير صالح",
		MsgQuoteRequested:   "تم طلب عرض سعر لـ: %s",
		MsgExportFailed:     "فشل تصدير المنتجات",
		MsgSortDefault:      "ترتيب حسب",
		MsgSortNameAsc:      "أ إلى ي",
		MsgSortNameDesc:     "ي إلى أ",
		MsgSortNewest:       "الأحدث",
		MsgSortOldest:       "الأقدم",
		MsgNavHome:          "الرئيسية",
		MsgNavAbout:         "من نحن",
		MsgNavProducts:      "المنتجات",
		MsgNavIndustries:    "الصناعات",
		MsgNavContact:       "اتصل بنا",
		MsgNavRequestQuote:  "اطلب عرض سعر",
		MsgExportSheetTitle: "المنتجات",
		MsgExportName:       "الاسم",
		MsgExportCategory:   "التصنيف",
		MsgExportImage:      "الصورة",
		MsgExportCreated:    "تاريخ الإضافة",
	},
}

// T returns the message for the locale, falling back to English and then to the ID itself
func T(locale models.Locale, id MessageID, args ...any) string {
	msg, ok := catalog[locale][id]
	if !ok {
		msg, ok = catalog[models.LocaleEnglish][id]
	}
	if !ok {
		return string(id)
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

var sortMessages = map[models.SortKey]MessageID{
	models.SortNone:     MsgSortDefault,
	models.SortNameAsc:  MsgSortNameAsc,
	models.SortNameDesc: MsgSortNameDesc,
	models.SortNewest:   MsgSortNewest,
	models.SortOldest:   MsgSortOldest,
}

// SortLabel returns the display label of a sort key
func SortLabel(locale models.Locale, key models.SortKey) string {
	if id, ok := sortMessages[key]; ok {
		return T(locale, id)
	}
	return T(locale, MsgSortDefault)
}

// SortOptions returns every sort key with its label in the given locale
func SortOptions(locale models.Locale) []models.SortOption {
	options := make([]models.SortOption, 0, len(models.SortKeys))
	for _, key := range models.SortKeys {
		options = append(options, models.SortOption{Key: key, Label: SortLabel(locale, key)})
	}
	return options
}
