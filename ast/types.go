package ast

import (
	"strings"

	"github.com/gocql/gocql"
)

// DataTypeName is the name of a native or collection type, upper-cased.
type DataTypeName string

const (
	TypeASCII     DataTypeName = "ASCII"
	TypeBigint    DataTypeName = "BIGINT"
	TypeBlob      DataTypeName = "BLOB"
	TypeBoolean   DataTypeName = "BOOLEAN"
	TypeCounter   DataTypeName = "COUNTER"
	TypeDate      DataTypeName = "DATE"
	TypeDecimal   DataTypeName = "DECIMAL"
	TypeDouble    DataTypeName = "DOUBLE"
	TypeDuration  DataTypeName = "DURATION"
	TypeFloat     DataTypeName = "FLOAT"
	TypeInet      DataTypeName = "INET"
	TypeInt       DataTypeName = "INT"
	TypeSmallint  DataTypeName = "SMALLINT"
	TypeText      DataTypeName = "TEXT"
	TypeTime      DataTypeName = "TIME"
	TypeTimestamp DataTypeName = "TIMESTAMP"
	TypeTimeUUID  DataTypeName = "TIMEUUID"
	TypeTinyint   DataTypeName = "TINYINT"
	TypeUUID      DataTypeName = "UUID"
	TypeVarchar   DataTypeName = "VARCHAR"
	TypeVarint    DataTypeName = "VARINT"

	TypeList   DataTypeName = "LIST"
	TypeMap    DataTypeName = "MAP"
	TypeSet    DataTypeName = "SET"
	TypeTuple  DataTypeName = "TUPLE"
	TypeFrozen DataTypeName = "FROZEN"
)

var cqlTypes = map[DataTypeName]gocql.Type{
	TypeASCII:     gocql.TypeAscii,
	TypeBigint:    gocql.TypeBigInt,
	TypeBlob:      gocql.TypeBlob,
	TypeBoolean:   gocql.TypeBoolean,
	TypeCounter:   gocql.TypeCounter,
	TypeDate:      gocql.TypeDate,
	TypeDecimal:   gocql.TypeDecimal,
	TypeDouble:    gocql.TypeDouble,
	TypeDuration:  gocql.TypeDuration,
	TypeFloat:     gocql.TypeFloat,
	TypeInet:      gocql.TypeInet,
	TypeInt:       gocql.TypeInt,
	TypeSmallint:  gocql.TypeSmallInt,
	TypeText:      gocql.TypeText,
	TypeTime:      gocql.TypeTime,
	TypeTimestamp: gocql.TypeTimestamp,
	TypeTimeUUID:  gocql.TypeTimeUUID,
	TypeTinyint:   gocql.TypeTinyInt,
	TypeUUID:      gocql.TypeUUID,
	TypeVarchar:   gocql.TypeVarchar,
	TypeVarint:    gocql.TypeVarint,
	TypeList:      gocql.TypeList,
	TypeMap:       gocql.TypeMap,
	TypeSet:       gocql.TypeSet,
	TypeTuple:     gocql.TypeTuple,
	TypeFrozen:    gocql.TypeCustom,
}

// LookupDataTypeName returns the built-in type called name, ignoring case.
func LookupDataTypeName(name string) (DataTypeName, bool) {
	n := DataTypeName(strings.ToUpper(name))
	_, ok := cqlTypes[n]
	return n, ok
}

// CQLType returns the protocol type code for the name. Unknown names map to
// TypeCustom.
func (n DataTypeName) CQLType() gocql.Type {
	if t, ok := cqlTypes[n]; ok {
		return t
	}
	return gocql.TypeCustom
}

// DataType is a column, field or parameter type. Exactly one of Name and
// Custom is set; Custom names a user-defined type.
type DataType struct {
	Name   DataTypeName   `json:"name,omitempty"`
	Custom *QualifiedName `json:"custom,omitempty"`
	Args   []DataType     `json:"args,omitempty"`
}

// NewDataType returns a built-in type with the given arguments.
func NewDataType(name DataTypeName, args ...DataType) DataType {
	return DataType{Name: name, Args: args}
}

// CQLType returns the protocol type code. Frozen types report the code of
// the type they wrap and user-defined types report TypeUDT.
func (t DataType) CQLType() gocql.Type {
	if t.Custom != nil {
		return gocql.TypeUDT
	}
	if t.Name == TypeFrozen && len(t.Args) == 1 {
		return t.Args[0].CQLType()
	}
	return t.Name.CQLType()
}

func (t DataType) String() string {
	var sb strings.Builder
	if t.Custom != nil {
		sb.WriteString(t.Custom.String())
	} else {
		sb.WriteString(string(t.Name))
	}
	if len(t.Args) > 0 {
		sb.WriteString("<")
		for i, a := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.String())
		}
		sb.WriteString(">")
	}
	return sb.String()
}
