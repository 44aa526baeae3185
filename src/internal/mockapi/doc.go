// Package mockapi is a development stand-in for the casava and smedan
// backends.
//
// It serves the endpoints the console uses, under one router:
//
//	/smedan/dashboard-stats
//	/casava/dashboard-stats/{customers,business,financials}
//	/casava/customer-data
//	/casava/customer-data/{id}
//	/casava/customers            (POST)
//
// Every endpoint except /health requires "Authorization: Bearer <token>".
// Tokens are either listed explicitly or HS256 JWTs signed with the server
// secret.
//
// # Response Format
//
// Successful responses:
//
//	{
//	  "success": true,
//	  "message": "optional",
//	  "data": { /* payload */ }
//	}
//
// Failed responses:
//
//	{
//	  "message": "Human-readable error message",
//	  "errors": { "field": ["message", ...] }
//	}
//
// Validation failures use 422, missing or invalid tokens 401.
package mockapi
