package codes

// MunicipalityTable maps 4-digit SCB kommun codes to municipality names.
// Covers the municipalities that occur in catalog event data; unknown codes
// fall through the resolver unchanged.
var MunicipalityTable = map[string]string{
	"0180": "Stockholm",
	"0181": "Södertälje",
	"0380": "Uppsala",
	"0480": "Nyköping",
	"0580": "Linköping",
	"0581": "Norrköping",
	"0680": "Jönköping",
	"0780": "Växjö",
	"0880": "Kalmar",
	"0980": "Gotland",
	"1080": "Karlskrona",
	"1280": "Malmö",
	"1281": "Lund",
	"1283": "Helsingborg",
	"1290": "Kristianstad",
	"1380": "Halmstad",
	"1480": "Göteborg",
	"1481": "Mölndal",
	"1484": "Lysekil",
	"1490": "Borås",
	"1780": "Karlstad",
	"1880": "Örebro",
	"1980": "Västerås",
	"2080": "Falun",
	"2081": "Borlänge",
	"2180": "Gävle",
	"2280": "Härnösand",
	"2281": "Sundsvall",
	"2380": "Östersund",
	"2480": "Umeå",
	"2481": "Skellefteå",
	"2580": "Luleå",
	"2581": "Piteå",
	"2583": "Haparanda",
}

// NormalizeMunicipalityCode canonicalizes a kommun code to its 4-digit form
func NormalizeMunicipalityCode(code string) string {
	return NormalizeDigits(code, 4)
}

// NewMunicipalityResolver builds a resolver over a municipality table. Pass
// MunicipalityTable for the standard set.
func NewMunicipalityResolver(table map[string]string) *Resolver {
	return NewResolver(table, NormalizeMunicipalityCode)
}
