package ast

import "strings"

// Permission is a permission that can be granted to a role.
type Permission string

const (
	PermissionAll       Permission = "ALL"
	PermissionAlter     Permission = "ALTER"
	PermissionAuthorize Permission = "AUTHORIZE"
	PermissionDescribe  Permission = "DESCRIBE"
	PermissionExecute   Permission = "EXECUTE"
	PermissionCreate    Permission = "CREATE"
	PermissionDrop      Permission = "DROP"
	PermissionModify    Permission = "MODIFY"
	PermissionSelect    Permission = "SELECT"
)

func (p Permission) String() string {
	if p == PermissionAll {
		return "ALL PERMISSIONS"
	}
	return string(p)
}

// ResourceKind identifies what a permission applies to.
type ResourceKind string

const (
	ResourceAllFunctions ResourceKind = "ALL FUNCTIONS"
	ResourceAllKeyspaces ResourceKind = "ALL KEYSPACES"
	ResourceAllRoles     ResourceKind = "ALL ROLES"
	ResourceAllMBeans    ResourceKind = "ALL MBEANS"
	ResourceFunction     ResourceKind = "FUNCTION"
	ResourceKeyspace     ResourceKind = "KEYSPACE"
	ResourceMBean        ResourceKind = "MBEAN"
	ResourceMBeans       ResourceKind = "MBEANS"
	ResourceRole         ResourceKind = "ROLE"
	ResourceTable        ResourceKind = "TABLE"
)

// Resource is the target of a permission. Name is set for every kind not
// starting with ALL; Keyspace optionally narrows ALL FUNCTIONS. A non-nil
// ArgTypes picks one overload of a FUNCTION.
type Resource struct {
	Kind     ResourceKind  `json:"kind"`
	Name     QualifiedName `json:"name"`
	Keyspace *Identifier   `json:"keyspace,omitempty"`
	ArgTypes []DataType    `json:"arg_types,omitempty"`
}

func (r *Resource) String() string {
	switch r.Kind {
	case ResourceAllFunctions:
		if r.Keyspace != nil {
			return "ALL FUNCTIONS IN KEYSPACE " + r.Keyspace.String()
		}
		return "ALL FUNCTIONS"
	case ResourceAllKeyspaces, ResourceAllRoles, ResourceAllMBeans:
		return string(r.Kind)
	case ResourceFunction:
		if r.ArgTypes != nil {
			return "FUNCTION " + r.Name.String() + "(" + joinDataTypes(r.ArgTypes) + ")"
		}
	}
	return string(r.Kind) + " " + r.Name.String()
}

// Privilege is a permission on an optional resource for an optional role.
// GRANT and REVOKE set every part; LIST may leave Resource and Role nil.
type Privilege struct {
	Permission Permission  `json:"permission"`
	Resource   *Resource   `json:"resource,omitempty"`
	Role       *Identifier `json:"role,omitempty"`
}

func joinDataTypes(types []DataType) string {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, ", ")
}
