// shopctl is the operator's command line companion to the monkey-shoes
// server: inspect the ledger and roster, show revenue, and move backup
// snapshots in and out.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/kirsten0429/monkey-shoes/internal/config"
	"github.com/kirsten0429/monkey-shoes/internal/env"
	"github.com/kirsten0429/monkey-shoes/internal/repo"
	"github.com/kirsten0429/monkey-shoes/internal/usecase"
)

func main() {
	env.Load(".env", ".env.local")

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "orders":
		cmdOrders(os.Args[2:])
	case "customers":
		cmdCustomers(os.Args[2:])
	case "stats":
		cmdStats(os.Args[2:])
	case "export":
		cmdExport(os.Args[2:])
	case "import":
		cmdImport(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("expected one of: orders, customers, stats, export, import")
}

func storeFlags(fs *flag.FlagSet) (dataDir, storeKind, dbPath *string) {
	defaults := config.EnvDefaults()
	dataDir = fs.String("data", defaults.DataDir, "data directory for the file store")
	storeKind = fs.String("store", defaults.Store, "storage backend: file or sqlite")
	dbPath = fs.String("db", defaults.DBPath, "sqlite database path")
	return
}

func openStore(dataDir, storeKind, dbPath string) usecase.Store {
	if storeKind == "sqlite" {
		st, err := repo.NewSQLiteStore(dbPath)
		if err != nil {
			log.Fatalf("failed to open sqlite store: %v", err)
		}
		return st
	}
	st, err := repo.NewFileStore(dataDir)
	if err != nil {
		log.Fatalf("failed to open file store: %v", err)
	}
	return st
}

func cmdOrders(args []string) {
	fs := flag.NewFlagSet("orders", flag.ExitOnError)
	dataDir, storeKind, dbPath := storeFlags(fs)
	unpaid := fs.Bool("unpaid", false, "only unpaid orders")
	fs.Parse(args)

	ledger := &usecase.LedgerService{Store: openStore(*dataDir, *storeKind, *dbPath)}
	orders, err := ledger.List()
	if err != nil {
		log.Fatalf("failed to list orders: %v", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Customer", "Phone", "Items", "Total", "Paid", "Method", "Created")
	for _, o := range orders {
		if *unpaid && o.IsPaid {
			continue
		}
		table.Append([]string{
			o.ID,
			o.CustomerName,
			o.CustomerPhone,
			strconv.Itoa(len(o.Items)),
			fmt.Sprintf("%.0f", o.TotalAmount),
			strconv.FormatBool(o.IsPaid),
			string(o.PaymentMethod),
			time.UnixMilli(o.CreatedAt).Format("2006-01-02 15:04"),
		})
	}
	table.Render()
}

func cmdCustomers(args []string) {
	fs := flag.NewFlagSet("customers", flag.ExitOnError)
	dataDir, storeKind, dbPath := storeFlags(fs)
	fs.Parse(args)

	roster := &usecase.RosterService{Store: openStore(*dataDir, *storeKind, *dbPath)}
	customers, err := roster.List()
	if err != nil {
		log.Fatalf("failed to list customers: %v", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Phone", "Visits", "Spent", "VIP")
	for _, c := range customers {
		table.Append([]string{
			c.Name,
			c.Phone,
			strconv.Itoa(c.VisitCount),
			fmt.Sprintf("%.0f", c.TotalSpent),
			strconv.FormatBool(c.IsVip),
		})
	}
	table.Render()
}

func cmdStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	dataDir, storeKind, dbPath := storeFlags(fs)
	rng := fs.String("range", "week", "bucket range: week, month or year")
	fs.Parse(args)

	stats := &usecase.StatsService{Store: openStore(*dataDir, *storeKind, *dbPath)}
	summary, err := stats.Summary(usecase.StatsRange(*rng))
	if err != nil {
		log.Fatalf("failed to compute stats: %v", err)
	}

	fmt.Printf("total revenue: %.0f over %d orders\n", summary.TotalRevenue, summary.TotalOrders)
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Bucket", "Revenue")
	for _, b := range summary.Buckets {
		table.Append([]string{b.Name, fmt.Sprintf("%.0f", b.Value)})
	}
	table.Render()
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	dataDir, storeKind, dbPath := storeFlags(fs)
	out := fs.String("out", "", "output path (defaults to the dated backup filename)")
	fs.Parse(args)

	backup := &usecase.BackupService{Store: openStore(*dataDir, *storeKind, *dbPath)}
	data, err := backup.ExportJSON()
	if err != nil {
		log.Fatalf("failed to export: %v", err)
	}
	path := *out
	if path == "" {
		path = backup.Filename()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("failed to write backup: %v", err)
	}
	fmt.Printf("backup written to %s\n", path)
}

func cmdImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	dataDir, storeKind, dbPath := storeFlags(fs)
	in := fs.String("in", "", "snapshot file to restore")
	fs.Parse(args)

	if *in == "" {
		fmt.Println("-in is required")
		fs.PrintDefaults()
		os.Exit(1)
	}
	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("failed to read snapshot: %v", err)
	}
	backup := &usecase.BackupService{Store: openStore(*dataDir, *storeKind, *dbPath)}
	if err := backup.Import(data); err != nil {
		log.Fatalf("failed to import: %v", err)
	}
	fmt.Println("snapshot restored")
}
