// Package ckanclient constructs clients that implement the ckan.Client
// interface.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/ckan-client/pkg/ckan"
//	  "github.com/fivetwenty-io/ckan-client/pkg/ckanclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Anonymous access to a public site.
//	  cli, err := ckanclient.NewWithURL("https://demo.ckan.org")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with an API token, a timeout and a logger.
//	  cli, err = ckanclient.New(&ckan.Config{
//	    BaseURL:     "https://demo.ckan.org",
//	    Token:       "eyJ0eXAiOi...",
//	    HTTPTimeout: 10 * time.Second,
//	  })
//
//	  resp, err := cli.Packages().Show(ctx, &ckan.PackageShowParams{ID: "river-levels"})
//	  if err != nil { log.Fatal(err) }
//	  if err := resp.Err(); err != nil { log.Fatal(err) }
//	  log.Println(resp.Result().Get("title").String())
//	}
//
// The token is sent verbatim in the Authorization header; CKAN API tokens
// take no "Bearer" prefix. Every call is a single HTTP exchange with no
// retries.
package ckanclient
