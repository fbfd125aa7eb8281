package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	u "github.com/araddon/gou"
	"github.com/datelex/datelex"
	"github.com/scylladb/termtables"
)

var (
	timezone = ""
	debug    = false
)

func main() {
	flag.StringVar(&timezone, "timezone", "UTC", "Timezone aka `America/Los_Angeles` formatted time-zone")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	if debug {
		u.SetupLogging("debug")
		u.SetColorOutput()
	}

	if len(flag.Args()) == 0 {
		fmt.Println(`Must pass a date:   ./datelex "2009-08-12T22:15:09.99Z"`)
		os.Exit(1)
	}
	datestr := flag.Args()[0]

	d, err := datelex.Parse(datestr)
	if err != nil {
		u.Errorf("%v", err)
		fmt.Println(err)
		os.Exit(1)
	}
	u.Debugf("parsed %q into %s", datestr, d)

	record := termtables.CreateTable()
	record.AddHeaders("Year", "Month", "Day", "Hour", "Minute", "Second", "Millisecond", "Offset")
	offset := "none"
	if d.Offset.Valid {
		offset = fmt.Sprintf("%ds", d.Offset.Seconds)
	}
	record.AddRow(d.Year, d.Month+1, d.Day, d.Hour, d.Minute, d.Second, d.Millisecond, offset)
	fmt.Println(record.Render())

	table := termtables.CreateTable()
	table.AddHeaders("Input", "Timezone", "Parsed, and Output as %v")

	zonename, _ := time.Now().In(time.Local).Zone()
	local, _ := datelex.ParseLocal(datestr)
	table.AddRow(datestr, zonename, fmt.Sprintf("%v", local))

	if timezone != "" {
		// NOTE:  This is very, very important to understand
		// time-parsing in go: without an explicit offset in the input,
		// the location decides what clock the fields are read against.
		loc, err := time.LoadLocation(timezone)
		if err != nil {
			u.Errorf("could not load timezone %q: %v", timezone, err)
			os.Exit(1)
		}
		ts, _ := datelex.ParseIn(datestr, loc)
		table.AddRow(datestr, timezone, fmt.Sprintf("%v", ts))
	}

	ts, _ := datelex.ParseAny(datestr)
	table.AddRow(datestr, "UTC", fmt.Sprintf("%v", ts.In(time.UTC)))

	fmt.Println(table.Render())
}
