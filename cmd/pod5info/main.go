// Command pod5info opens a POD5 file, prints its footer's file identifier,
// software and version strings and the record batch count of the Signal
// and Reads tables, and summarizes the RunInfoTable row by row.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pod5io/pod5"
	"github.com/pod5io/pod5/table"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <file.pod5>\n", os.Args[0])
		os.Exit(2)
	}

	path := os.Args[1]
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("pod5info: %v", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		log.Fatalf("pod5info: %v", err)
	}

	file, err := pod5.Open(f, info.Size())
	if err != nil {
		log.Fatalf("pod5info: %v", err)
	}
	defer file.Close()

	fmt.Printf("file_identifier: %s\n", file.FileIdentifier())
	fmt.Printf("software:        %s\n", file.Software())
	fmt.Printf("pod5_version:    %s\n", file.Pod5Version())

	printTable("Signal", file.SignalTable)
	printTable("Reads", file.ReadsTable)
	printRunInfo(file)
}

func printTable(name string, open func() (*table.Reader, error)) {
	r, err := open()
	if err != nil {
		fmt.Printf("%-8s table: %v\n", name, err)
		return
	}
	defer r.Close()

	fmt.Printf("%-8s table: %d record batch(es)\n", name, r.Len())
}

func printRunInfo(file *pod5.File) {
	rows, err := file.RunInfo()
	if err != nil {
		fmt.Printf("RunInfo  table: %v\n", err)
		return
	}

	fmt.Printf("RunInfo  table: %d row(s)\n", len(rows))
	for _, r := range rows {
		fmt.Printf("  %s  sample_rate=%dHz  adc=[%d,%d]  context_tags=%d  tracking_id=%d\n",
			r.AcquisitionID, r.SampleRate, r.AdcMin, r.AdcMax, len(r.ContextTags), len(r.TrackingID))
	}
}
