// Package docs renders Syneto-branded documentation pages for OpenAPI specs.
// Five front-end tools are supported (RapiDoc, Swagger UI, ReDoc, Stoplight
// Elements, Scalar); all of them share one pipeline: a base HTML page built
// from the tool's CDN assets, brand CSS derived from a brand.Config, and a
// loader script, spliced together by htmlinject. Tool differences live in a
// per-variant lookup table, not in separate control flow.
package docs
