// Package ckan provides the interfaces, parameter types and response helpers
// for working with the CKAN Action API (version 3).
//
// # Overview
//
// Every remote action is exposed as one method on a resource client
// (Packages, Resources, Groups, ...). A method turns its parameters into a
// request body, sends it to {base}/api/3/action/{action} and returns the
// decoded JSON as a *Response. A concrete implementation is provided by the
// ckanclient package:
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
//	  cli, err := ckanclient.NewWithToken("https://demo.ckan.org", "my-api-token")
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.Packages().List(ctx, &ckan.PackageListParams{Limit: ckan.Int(10)})
//	  if err != nil { log.Fatal(err) }
//
//	  for _, name := range resp.Result().Array() {
//	    log.Println(name.String())
//	  }
//	}
//
// # Optional parameters
//
// Optional fields are pointers, slices or maps. A nil value is never sent;
// use String, Int and Bool to take the address of a literal. Required fields
// are plain values and are always sent.
//
// # Errors
//
// The client returns an error only when it could not complete the exchange:
// ErrRequestEncoding, ErrTransport, ErrUploadFile and ErrResponseDecoding.
// A nil params pointer on an action with required fields fails with
// ErrParamsRequired before anything is sent.
// A well-formed reply with "success": false is returned as a normal
// *Response. Call Response.Err to turn it into an *ActionError and branch
// with IsNotFound, IsNotAuthorized or IsValidationError.
package ckan
