package main

import (
	"context"
	"flag"
	"log"

	"cloud.google.com/go/bigquery"
)

var (
	projectID = flag.String("project", "", "GCP project ID (required)")
	datasetID = flag.String("dataset", "billing", "BigQuery dataset ID")
	tableID   = flag.String("table", "Bills", "BigQuery table ID")
	location  = flag.String("location", "US", "Dataset location, used only when creating the dataset")
)

// billSchema matches internal/bill.Record. Everything is a string on
// purpose: amounts and dates are persisted as detected text.
var billSchema = bigquery.Schema{
	{Name: "bill_id", Type: bigquery.StringFieldType, Required: true},
	{Name: "bill_date", Type: bigquery.StringFieldType},
	{Name: "bill_time", Type: bigquery.StringFieldType},
	{Name: "service_name", Type: bigquery.StringFieldType},
	{Name: "total_amount", Type: bigquery.StringFieldType},
	{Name: "items", Type: bigquery.RecordFieldType, Repeated: true, Schema: bigquery.Schema{
		{Name: "name", Type: bigquery.StringFieldType},
		{Name: "price", Type: bigquery.StringFieldType},
		{Name: "quantity", Type: bigquery.StringFieldType},
	}},
	{Name: "processed_timestamp", Type: bigquery.StringFieldType},
}

func main() {
	flag.Parse()

	ctx := context.Background()

	if *projectID == "" {
		log.Fatal("Error: -project flag is required. Please specify your GCP project ID.")
	}

	client, err := bigquery.NewClient(ctx, *projectID)
	if err != nil {
		log.Fatalf("Failed to create BigQuery client: %v", err)
	}
	defer client.Close()

	log.Printf("Connected to BigQuery project: %s, dataset: %s", *projectID, *datasetID)

	dataset := client.Dataset(*datasetID)
	if _, err := dataset.Metadata(ctx); err != nil {
		log.Printf("Dataset %s not found, creating it in %s", *datasetID, *location)
		if err := dataset.Create(ctx, &bigquery.DatasetMetadata{Location: *location}); err != nil {
			log.Fatalf("Failed to create dataset: %v", err)
		}
	}

	table := dataset.Table(*tableID)
	if _, err := table.Metadata(ctx); err == nil {
		log.Printf("Table %s.%s already exists. Nothing to do.", *datasetID, *tableID)
		return
	}

	log.Printf("Creating table %s.%s", *datasetID, *tableID)
	if err := table.Create(ctx, &bigquery.TableMetadata{Schema: billSchema}); err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}

	log.Printf("Table %s.%s created successfully", *datasetID, *tableID)
}
