package main

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	pmet "github.com/kvouter/vom/metrics/prom"
	"github.com/kvouter/vom/vatstore"
	"github.com/kvouter/vom/vom"
)

var serveMetricsAddr string
var serveCacheSize int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Hold a VOM open and export its cache metrics on /metrics until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := vatstore.OpenSQLiteStore(dsnFlag)
		if err != nil {
			return err
		}
		defer store.Close()

		metrics := pmet.New(nil, "vom", "vomctl", nil)
		v := vom.New(vom.Options{CacheSize: serveCacheSize, Store: store, Metrics: metrics})
		vom.MakeKind(v.Registry(), func(h *vom.Handle) *Record { return &Record{h: h} })

		http.Handle("/metrics", promhttp.Handler())
		log.Printf("serving metrics at %s, cache size %d, db %s", serveMetricsAddr, serveCacheSize, dsnFlag)
		return http.ListenAndServe(serveMetricsAddr, nil)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveMetricsAddr, "http", ":8080", "address to serve Prometheus metrics on")
	serveCmd.Flags().IntVar(&serveCacheSize, "cache-size", 1024, "resident cache size for the lifetime of this process")
}
