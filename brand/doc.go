// Package brand holds the Syneto presentation defaults used to theme OpenAPI
// documentation pages: the color palette, fonts, logo handling and the derived
// CSS blocks shared by every documentation tool.
package brand
