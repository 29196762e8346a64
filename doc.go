// Package lectern provides a Go client for the lectern resource
// ingestion and retrieval service backed by Redis.
//
// A resource is an uploaded study document: its raw bytes live in a
// chunked blob store and its metadata (title, subject, derived tags)
// lives in a catalog keyed by monotonic ids, so listings come back
// newest first.
//
//	client, _ := lectern.New(ctx, lectern.WithRedis("localhost:6379", ""))
//	defer client.Close()
//
//	res, _ := client.Ingest(ctx, lectern.IngestInput{
//	    Filename: "os-notes.pdf",
//	    Subject:  "Operating Systems",
//	    Content:  raw,
//	})
//
//	records, _ := client.Search(ctx, "operating")
//	file, _ := client.GetFile(ctx, res.RecordID)
package lectern
