// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DatasetSourceKind is the concrete variant of a [DatasetSource].
type DatasetSourceKind int

const (
	// DatasetSourceUnset means the descriptor exists but no variant is configured.
	DatasetSourceUnset DatasetSourceKind = iota

	// DatasetSourceFile is a set of files reachable by the serving process.
	DatasetSourceFile

	// DatasetSourceBigQuery is a warehouse table. It is part of the wire
	// contract but not supported by the serving backend.
	DatasetSourceBigQuery
)

// String returns a lower-case name of the variant.
func (k DatasetSourceKind) String() string {
	switch k {
	case DatasetSourceFile:
		return "file"
	case DatasetSourceBigQuery:
		return "bigquery"
	default:
		return "unset"
	}
}

// DataFormat is the encoding of the files of a [FileSource].
type DataFormat string

const (
	// DataFormatJSONLines is one JSON object per line.
	DataFormatJSONLines DataFormat = "jsonl"

	// DataFormatCSV is comma separated values with a header line.
	DataFormatCSV DataFormat = "csv"
)

// DatasetSource describes the entity dataset of a batch request.
// At most one of its variants is expected to be set.
type DatasetSource struct {
	FileSource     *FileSource     `json:"file_source,omitempty" yaml:"file_source,omitempty"`
	BigQuerySource *BigQuerySource `json:"bigquery_source,omitempty" yaml:"bigquery_source,omitempty"`
}

// Kind reports which variant of the descriptor is set. File wins if both are.
func (d DatasetSource) Kind() DatasetSourceKind {
	switch {
	case d.FileSource != nil:
		return DatasetSourceFile
	case d.BigQuerySource != nil:
		return DatasetSourceBigQuery
	default:
		return DatasetSourceUnset
	}
}

// FileSource points at one or more files holding entity rows.
type FileSource struct {
	// FileURIs are "file://" URIs or plain paths.
	FileURIs []string `json:"file_uris"`

	// DataFormat is the encoding of every file in FileURIs.
	DataFormat DataFormat `json:"data_format"`
}

// BigQuerySource points at a warehouse table holding entity rows.
type BigQuerySource struct {
	TableRef string `json:"table_ref"`
}
