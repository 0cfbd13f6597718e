// Package abuseipdb submits abuse reports to the AbuseIPDB v2 API.
//
// A Client sends exactly one POST per Submit call and classifies the
// result into a model.Outcome: success on HTTP 200, rejection on any other
// status, transport failure when no usable response arrived. There are no
// retries and no rate limiting; the caller decides what to do with the
// outcome.
//
//	client, err := abuseipdb.NewClient(cfg.Credential, abuseipdb.WithHTTPClient(httpClient))
//	outcome := client.Submit(ctx, model.NewReport(ip, categories, comment))
//	fmt.Println(outcome.Message())
package abuseipdb
