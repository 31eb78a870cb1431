// Package arxml loads AUTOSAR XML (ARXML) documents, performs
// attribute-level edits on matching elements, locates elements by tag,
// restricted XPath, or attribute value, and exports the element tree to a
// JSON representation.
//
// Basic Usage:
//
//	m := arxml.NewStandardManager()
//	if err := m.Load("ecu_extract.arxml"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Stamp a version attribute on every module configuration.
//	n, err := m.AddAttributeByTag("ECUC-MODULE-CONFIGURATION-VALUES", "version", "1.0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("updated %d elements\n", n)
//
//	if err := m.Save("out/ecu_extract.arxml"); err != nil {
//	    log.Fatal(err)
//	}
//
//	data, err := m.ExportJSON()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(data)
//
// Each Manager owns exactly one document at a time; Load replaces it
// wholly. Managers are independent of each other and are not safe for
// concurrent use without external locking.
//
// Path expressions accepted by FindByPath use a restricted XPath subset
// documented on ParsePath: tag segments, the wildcard *, single attribute
// predicates of the form TAG[@attr='value'], and a leading // for
// descendant search. Full XPath axis semantics are out of scope.
package arxml
