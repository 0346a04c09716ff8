package turkishsearch

import "strings"

// Türkçe karakterlere duyarsız ILIKE araması üretir. Postgres tarafında
// translate ile ç/ğ/ı/İ/ö/ş/ü varyantları ASCII karşılıklarına indirgenir,
// arama terimi de uygulama tarafında aynı şekilde normalize edilir.

const (
	turkishChars = "çÇğĞıİöÖşŞüÜ"
	asciiChars   = "ccggiioossuu"
)

var replacer = strings.NewReplacer(
	"ç", "c", "Ç", "c",
	"ğ", "g", "Ğ", "g",
	"ı", "i", "İ", "i",
	"ö", "o", "Ö", "o",
	"ş", "s", "Ş", "s",
	"ü", "u", "Ü", "u",
)

// Normalize arama terimini Türkçe karakterlerden arındırıp küçük harfe çevirir.
func Normalize(term string) string {
	return strings.ToLower(replacer.Replace(term))
}

// SQLFilter verilen sütun için Türkçe-duyarsız ILIKE koşulu ve argümanlarını döndürür.
// Kullanım: query.Where(turkishsearch.SQLFilter("repair_requests.subject", term))
func SQLFilter(column, term string) (string, []any) {
	fragment := "translate(lower(" + column + "), ?, ?) ILIKE ?"
	args := []any{turkishChars, asciiChars, "%" + Normalize(term) + "%"}
	return fragment, args
}
