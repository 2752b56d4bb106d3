// Package i18n holds the static UI string tables. Lookups never fail: an
// unknown key falls back to the raw key, an unknown language to the default.
package i18n

const DefaultLanguage = "tr"

var languages = map[string]map[string]string{
	"tr": {
		// service catalog keys
		"towel":         "Ekstra Havlu",
		"cleaning":      "Oda Temizliği",
		"technical":     "Teknik Destek",
		"wakeup":        "Uyandırma Servisi",
		"luggage":       "Bagaj Yardımı",
		"laundry":       "Çamaşırhane",
		"minibar":       "Minibar Yenileme",
		"bedding":       "Yatak Takımı Değişimi",
		"taxi":          "Taksi Çağır",
		"late_checkout": "Geç Çıkış Talebi",

		// notifications
		"added_to_cart":    "Sepete eklendi",
		"order_received":   "Siparişiniz alındı",
		"request_received": "Talebiniz alındı",
		"chat_unavailable": "Üzgünüm, şu anda yanıt veremiyorum. Lütfen resepsiyonu arayın.",
		"invalid_code":     "Onay kodu en az 4 karakter olmalı",
	},
	"en": {
		"towel":         "Extra Towel",
		"cleaning":      "Room Cleaning",
		"technical":     "Technical Support",
		"wakeup":        "Wake-up Call",
		"luggage":       "Luggage Assistance",
		"laundry":       "Laundry",
		"minibar":       "Minibar Refill",
		"bedding":       "Bedding Change",
		"taxi":          "Call a Taxi",
		"late_checkout": "Late Checkout Request",

		"added_to_cart":    "Added to cart",
		"order_received":   "Your order has been received",
		"request_received": "Your request has been received",
		"chat_unavailable": "Sorry, I can't answer right now. Please call the reception.",
		"invalid_code":     "Confirmation code must be at least 4 characters",
	},
}

// IsSupported reports whether lang has a translation table.
func IsSupported(lang string) bool {
	_, ok := languages[lang]
	return ok
}

// T resolves key in lang. Missing language falls back to the default table,
// a missing key to the key itself.
func T(lang, key string) string {
	table, ok := languages[lang]
	if !ok {
		table = languages[DefaultLanguage]
	}
	if v, ok := table[key]; ok {
		return v
	}
	return key
}

// ServiceName resolves a global service key to its guest-facing display name.
func ServiceName(lang, key string) string {
	return T(lang, key)
}
