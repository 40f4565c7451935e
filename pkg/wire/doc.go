// Package wire holds the inbound chart request schema: the message types a
// caller sends, the enumerations they reference, and the Source/Document/Loader
// contracts used to fetch request documents from files, fs.FS trees, or HTTP.
// Optional fields are pointers so that absence survives decoding; resolution
// into the chart model lives in internal/model.
package wire
