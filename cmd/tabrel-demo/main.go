package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/tuannm99/tabrel"
	"github.com/tuannm99/tabrel/arrowio"
	"github.com/tuannm99/tabrel/internal"
	"github.com/tuannm99/tabrel/internal/dataset"
)

func main() {
	cfgPath := flag.String("config", "", "path to yaml config (optional)")
	flag.Parse()

	cfg := loadConfig(*cfgPath)
	setupLogger(cfg.Log.Level)
	slog.Info("starting", "app", cfg.AppName, "country", cfg.Demo.Country, "row_limit", cfg.Demo.RowLimit)

	cities := dataset.Cities().WithPolicy(tabrel.Policy{
		StrictRename: cfg.Table.StrictRename,
		StrictUpdate: cfg.Table.StrictUpdate,
	})
	countries := dataset.Countries()

	fmt.Println("cities:")
	fmt.Println(cities)
	fmt.Println("countries:")
	fmt.Println(countries)

	local, err := cities.SelectRows(func(get tabrel.Lookup) (bool, error) {
		c, err := get("Country")
		if err != nil {
			return false, err
		}
		return c == cfg.Demo.Country, nil
	})
	if err != nil {
		fail("select rows", err)
	}
	fmt.Printf("cities in %s:\n", cfg.Demo.Country)
	fmt.Println(local)

	joined, err := local.Join(countries, "Country", "Country")
	if err != nil {
		fail("join", err)
	}
	fmt.Println("joined with countries:")
	fmt.Println(joined)

	shaped, err := joined.SelectColumns("L.Name", "L.Population", "R.Code").Rename(
		tabrel.RenamePair{Old: "L.Name", New: "City"},
		tabrel.RenamePair{Old: "L.Population", New: "Population"},
		tabrel.RenamePair{Old: "R.Code", New: "Code"},
	)
	if err != nil {
		fail("rename", err)
	}

	top := shaped.SortBy("Population", tabrel.NumericDesc).Limit(cfg.Demo.RowLimit)
	fmt.Printf("top %d by population:\n", cfg.Demo.RowLimit)
	fmt.Println(top)

	shouted, err := top.Update("City", strings.ToUpper, nil)
	if err != nil {
		fail("update", err)
	}
	fmt.Println("city names upper-cased:")
	fmt.Println(shouted)

	all := cities.SelectColumns("Name", "Country")
	here := local.SelectColumns("Name", "Country")
	elsewhere, err := all.Except(here)
	if err != nil {
		fail("except", err)
	}
	fmt.Printf("cities outside %s:\n", cfg.Demo.Country)
	fmt.Println(elsewhere)

	roundTrip, err := elsewhere.Union(here)
	if err != nil {
		fail("union", err)
	}
	overlap, err := all.Intersect(here)
	if err != nil {
		fail("intersect", err)
	}
	slog.Info("set algebra",
		"all", all.RowCount(),
		"union", roundTrip.RowCount(),
		"intersect", overlap.RowCount(),
		"except", elsewhere.RowCount(),
		"distinct", roundTrip.Distinct().RowCount(),
	)

	rec := arrowio.Record(top)
	defer rec.Release()
	back, err := arrowio.FromRecord(rec)
	if err != nil {
		fail("arrow round trip", err)
	}
	slog.Info("arrow record", "rows", rec.NumRows(), "cols", rec.NumCols(), "round_trip_rows", back.RowCount())
}

// loadConfig reads the yaml config when a path is given, falling back
// to demo defaults on absence or load failure.
func loadConfig(path string) internal.TabrelConfig {
	var cfg internal.TabrelConfig
	cfg.AppName = "tabrel-demo"
	cfg.Demo.Country = "UK"
	cfg.Demo.RowLimit = 5
	cfg.Log.Level = "info"
	if path == "" {
		return cfg
	}

	loaded, err := internal.LoadConfig(path)
	if err != nil {
		slog.Warn("config not loaded, using defaults", "path", path, "err", err)
		return cfg
	}
	if loaded.AppName == "" {
		loaded.AppName = cfg.AppName
	}
	if loaded.Demo.Country == "" {
		loaded.Demo.Country = cfg.Demo.Country
	}
	if loaded.Demo.RowLimit == 0 {
		loaded.Demo.RowLimit = cfg.Demo.RowLimit
	}
	if loaded.Log.Level == "" {
		loaded.Log.Level = cfg.Log.Level
	}
	return *loaded
}

func setupLogger(level string) {
	lv := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lv = slog.LevelDebug
	case "warn":
		lv = slog.LevelWarn
	case "error":
		lv = slog.LevelError
	}
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: lv,
	})
	slog.SetDefault(slog.New(handler))
}

func fail(stage string, err error) {
	slog.Error("demo failed", "stage", stage, "err", err)
	os.Exit(1)
}
