package codes

// RegionTable maps Swedish region (län) codes to their official names.
// Codes are the 2-digit SCB codes; Sweden has 21 län.
var RegionTable = map[string]string{
	"01": "Stockholms län",
	"03": "Uppsala län",
	"04": "Södermanlands län",
	"05": "Östergötlands län",
	"06": "Jönköpings län",
	"07": "Kronobergs län",
	"08": "Kalmar län",
	"09": "Gotlands län",
	"10": "Blekinge län",
	"12": "Skåne län",
	"13": "Hallands län",
	"14": "Västra Götalands län",
	"17": "Värmlands län",
	"18": "Örebro län",
	"19": "Västmanlands län",
	"20": "Dalarnas län",
	"21": "Gävleborgs län",
	"22": "Västernorrlands län",
	"23": "Jämtlands län",
	"24": "Västerbottens län",
	"25": "Norrbottens län",
}

// NormalizeRegionCode canonicalizes a region code to its 2-digit form
func NormalizeRegionCode(code string) string {
	return NormalizeDigits(code, 2)
}

// NewRegionResolver builds a resolver over a region table. Pass RegionTable
// for the standard SCB set.
func NewRegionResolver(table map[string]string) *Resolver {
	return NewResolver(table, NormalizeRegionCode)
}
