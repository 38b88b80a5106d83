package xmlspec

import "encoding/xml"

// Wire shapes for the keywordspec XML encoding. XMLName on xmlSpec carries
// no fixed name so that the actual root tag can be checked explicitly and
// reported as a schema error rather than a decoder error.
type xmlSpec struct {
	XMLName     xml.Name
	SpecVersion string       `xml:"specversion,attr"`
	Name        string       `xml:"name,attr"`
	Type        string       `xml:"type,attr"`
	Scope       string       `xml:"scope,attr"`
	Format      string       `xml:"format,attr"`
	Source      string       `xml:"source,attr"`
	Lineno      string       `xml:"lineno,attr"`
	Version     string       `xml:"version"`
	Doc         string       `xml:"doc"`
	Inits       []xmlKeyword `xml:"inits>init"`
	Keywords    []xmlKeyword `xml:"keywords>kw"`
	DataTypes   xmlDataTypes `xml:"datatypes"`
}

type xmlKeyword struct {
	Name     string   `xml:"name,attr"`
	Source   string   `xml:"source,attr"`
	Lineno   string   `xml:"lineno,attr"`
	Doc      string   `xml:"doc"`
	Shortdoc string   `xml:"shortdoc"`
	Tags     []string `xml:"tags>tag"`
	Args     []xmlArg `xml:"arguments>arg"`
}

// xmlArg keeps name and default as element pointers: a missing <name>
// child skips the record, and a missing <default> child is different from
// an empty one.
type xmlArg struct {
	Kind    string    `xml:"kind,attr"`
	Name    *xmlText  `xml:"name"`
	Default *xmlText  `xml:"default"`
	Types   []xmlText `xml:"type"`
}

type xmlText struct {
	Text string `xml:",chardata"`
}

type xmlDataTypes struct {
	Enums      []xmlEnum      `xml:"enums>enum"`
	TypedDicts []xmlTypedDict `xml:"typeddicts>typeddict"`
	Customs    []xmlCustom    `xml:"customs>custom"`
}

type xmlEnum struct {
	Name    string      `xml:"name,attr"`
	Doc     string      `xml:"doc"`
	Members []xmlMember `xml:"members>member"`
}

type xmlMember struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type xmlTypedDict struct {
	Name  string    `xml:"name,attr"`
	Doc   string    `xml:"doc"`
	Items []xmlItem `xml:"items>item"`
}

// xmlItem's required attribute is tri-state, hence the pointer.
type xmlItem struct {
	Key      string  `xml:"key,attr"`
	Type     string  `xml:"type,attr"`
	Required *string `xml:"required,attr"`
}

type xmlCustom struct {
	Name string `xml:"name,attr"`
	Doc  string `xml:"doc"`
}
