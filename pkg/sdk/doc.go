// Package sdk provides a Go client for the storesearch HTTP API.
//
//	client := sdk.New("http://localhost:8080", sdk.WithAPIKey("secret"))
//	resp, err := client.Search(ctx, sdk.SearchParams{
//	    Query:  "robe été",
//	    Locale: "fr",
//	    Limit:  10,
//	})
package sdk
