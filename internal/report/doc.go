// Package report renders validation results for people and machines.
//
// A [Reporter] writes one block per checked document. [FormatText] produces
// colorized output meant for a terminal; [FormatJSON] produces one indented
// JSON object per document:
//
//	{
//	  "file": "openapi.yaml",
//	  "valid": false,
//	  "error_count": 1,
//	  "errors": [
//	    {"reason": "title is required", "path": "/info/title",
//	     "pointer": "/info/title", "segments": ["info", "title"]}
//	  ]
//	}
package report
