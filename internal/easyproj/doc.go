// Package easyproj provides parsing of Hager easy project exports.
//
// An easy export (.txa) is a ZIP archive produced by the easy configuration
// tool. The archive carries a configuration/ directory with two XML
// documents: Channels.xml, describing every configured channel with its
// datapoints and group addresses, and Products.xml, listing the installed
// devices by serial number.
//
// # Supported Formats
//
//   - .txa: native easy project archive (ZIP with XML)
//   - .xml: a bare Channels.xml document (no product name fallback)
//
// The format is detected from content, not from the file extension.
//
// # Usage
//
//	parser := easyproj.NewParser(logger)
//	project, err := parser.ParseFile("installation.txa")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, ch := range project.Channels {
//	    fmt.Printf("%s (%s): %d datapoints\n", ch.Name, ch.Icon, len(ch.Datapoints))
//	}
//
// # Document Structure
//
// Channels.xml is a tree of <config> elements. Each top-level <config> is
// one channel; its <property> children carry the channel metadata (Name,
// Icon) and its nested <config> blocks hold the functional blocks, the
// datapoints and their group addresses. The parser walks this tree
// recursively and materialises a flat Project of Channel records, leaving
// all interpretation (entity classification, field mapping) to callers.
//
// Group addresses appear in the export as flat integers (0..65535). The
// three-level bus notation (main/middle/sub) is available for diagnostics
// via GroupAddress.ThreeLevel.
package easyproj
