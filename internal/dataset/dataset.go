// Package dataset builds the small fixture tables used by the demo
// driver.
package dataset

import "github.com/tuannm99/tabrel/internal/table"

// Cities returns a city table with Name, Country and Population
// columns.
func Cities() table.Table {
	return table.New("Name", "Country", "Population").
		MustAddRow("London", "UK", "8900000").
		MustAddRow("Leicester", "UK", "500000").
		MustAddRow("Manchester", "UK", "550000").
		MustAddRow("Hamburg", "Germany", "1800000").
		MustAddRow("Munich", "Germany", "1500000").
		MustAddRow("Lyon", "France", "510000").
		MustAddRow("Toulouse", "France", "480000")
}

// Countries returns a country table keyed by Country, shaped for
// joining against Cities.
func Countries() table.Table {
	return table.New("Country", "Code", "Capital").
		MustAddRow("UK", "GB", "London").
		MustAddRow("Germany", "DE", "Berlin").
		MustAddRow("France", "FR", "Paris").
		MustAddRow("Spain", "ES", "Madrid")
}
