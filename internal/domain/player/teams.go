package player

// nflTeamCodes maps the odds provider's full NFL team names, upper-cased, to
// ESPN roster codes.
var nflTeamCodes = map[string]string{
	"ARIZONA CARDINALS":     "ARI",
	"ATLANTA FALCONS":       "ATL",
	"BALTIMORE RAVENS":      "BAL",
	"BUFFALO BILLS":         "BUF",
	"CAROLINA PANTHERS":     "CAR",
	"CHICAGO BEARS":         "CHI",
	"CINCINNATI BENGALS":    "CIN",
	"CLEVELAND BROWNS":      "CLE",
	"DALLAS COWBOYS":        "DAL",
	"DENVER BRONCOS":        "DEN",
	"DETROIT LIONS":         "DET",
	"GREEN BAY PACKERS":     "GB",
	"HOUSTON TEXANS":        "HOU",
	"INDIANAPOLIS COLTS":    "IND",
	"JACKSONVILLE JAGUARS":  "JAX",
	"KANSAS CITY CHIEFS":    "KC",
	"LAS VEGAS RAIDERS":     "LV",
	"LOS ANGELES CHARGERS":  "LAC",
	"LOS ANGELES RAMS":      "LAR",
	"MIAMI DOLPHINS":        "MIA",
	"MINNESOTA VIKINGS":     "MIN",
	"NEW ENGLAND PATRIOTS":  "NE",
	"NEW ORLEANS SAINTS":    "NO",
	"NEW YORK GIANTS":       "NYG",
	"NEW YORK JETS":         "NYJ",
	"PHILADELPHIA EAGLES":   "PHI",
	"PITTSBURGH STEELERS":   "PIT",
	"SEATTLE SEAHAWKS":      "SEA",
	"SAN FRANCISCO 49ERS":   "SF",
	"TAMPA BAY BUCCANEERS":  "TB",
	"TENNESSEE TITANS":      "TEN",
	"WASHINGTON COMMANDERS": "WSH",
}
