package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	otfgrade "github.com/nsip/otf-grade"
	"github.com/peterbourgon/ff/v3"
)

func main() {

	fs := flag.NewFlagSet("otf-grade", flag.ExitOnError)
	var (
		_           = fs.String("config", "", "config file (optional), json format.")
		serviceName = fs.String("name", "", "name for this grading service instance")
		serviceID   = fs.String("id", "", "id for this grading service instance, leave blank to auto-generate a unique id")
		serviceHost = fs.String("host", "localhost", "name/address of host for this service")
		servicePort = fs.Int("port", 0, "port to run service on, if not specified will assign an available port automatically")
		rateTable   = fs.String("rateTable", "", "file path or url of the rate:bandwidth table, leave blank to use the built-in table")
		historySize = fs.Int("historySize", 5, "number of graded attempts kept per student")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.JSONParser),
		ff.WithEnvVarPrefix("OTF_GRADE"),
	); err != nil {
		fmt.Printf("\nCannot read otf-grade configuration:\n%s\n\n", err)
		os.Exit(1)
	}

	opts := []otfgrade.Option{
		otfgrade.Name(*serviceName),
		otfgrade.ID(*serviceID),
		otfgrade.Host(*serviceHost),
		otfgrade.Port(*servicePort),
		otfgrade.RateTable(*rateTable),
		otfgrade.HistorySize(*historySize),
	}

	srvc, err := otfgrade.New(opts...)
	if err != nil {
		fmt.Printf("\nCannot create otf-grade service:\n%s\n\n", err)
		return
	}

	srvc.PrintConfig()

	// signal handler for shutdown
	closed := make(chan struct{})
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		fmt.Println("\notf-grade shutting down")
		srvc.Shutdown()
		fmt.Println("otf-grade closed")
		close(closed)
	}()

	srvc.Start()

	// block until shutdown by sig-handler
	<-closed

}
