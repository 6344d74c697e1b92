// Package manifest provides the stack manifest types, the JSON writer
// used by the generator, and the loader and path extractor used by the
// copier.
//
// # Stack Format
//
// A stack file lists categorized repository files:
//
//	{
//	  "files": [
//	    {
//	      "type": "agents",
//	      "path": "agents\\reviewer.md",
//	      "description": "Reviews pull requests"
//	    }
//	  ]
//	}
//
// Paths use backslash separators regardless of the host filesystem; the
// copier normalizes them back to the host convention.
//
// # Path Extraction
//
// ExtractPaths accepts any decoded JSON or YAML value, so bare path
// strings and plain path lists work as well as full manifests:
//
//	loader := manifest.NewLoader()
//	doc, err := loader.Load("stack-java.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paths := manifest.ExtractPaths(doc)
package manifest
