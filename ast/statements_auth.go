package ast

// RoleOptions are the WITH options of CREATE and ALTER ROLE. Unset options
// are nil.
type RoleOptions struct {
	Password  Term `json:"password,omitempty"`
	Superuser Term `json:"superuser,omitempty"`
	Login     Term `json:"login,omitempty"`
	Options   Term `json:"options,omitempty"`
}

// IsZero reports whether no option is set.
func (o RoleOptions) IsZero() bool {
	return o.Password == nil && o.Superuser == nil && o.Login == nil && o.Options == nil
}

// UserOptions are the options of CREATE and ALTER USER. Superuser is nil
// when neither SUPERUSER nor NOSUPERUSER is given.
type UserOptions struct {
	Password  Term  `json:"password,omitempty"`
	Superuser *bool `json:"superuser,omitempty"`
}

// CreateRole represents CREATE ROLE.
type CreateRole struct {
	Span
	IfNotExists bool        `json:"if_not_exists,omitempty"`
	Name        Identifier  `json:"name"`
	Options     RoleOptions `json:"options"`
}

// AlterRole represents ALTER ROLE.
type AlterRole struct {
	Span
	IfExists bool        `json:"if_exists,omitempty"`
	Name     Identifier  `json:"name"`
	Options  RoleOptions `json:"options"`
}

// CreateUser represents CREATE USER.
type CreateUser struct {
	Span
	IfNotExists bool        `json:"if_not_exists,omitempty"`
	Name        Identifier  `json:"name"`
	Options     UserOptions `json:"options"`
}

// AlterUser represents ALTER USER.
type AlterUser struct {
	Span
	IfExists bool        `json:"if_exists,omitempty"`
	Name     Identifier  `json:"name"`
	Options  UserOptions `json:"options"`
}

// Grant represents GRANT permission ON resource TO role.
type Grant struct {
	Span
	Privilege Privilege `json:"privilege"`
}

// Revoke represents REVOKE permission ON resource FROM role.
type Revoke struct {
	Span
	Privilege Privilege `json:"privilege"`
}

// GrantRole represents GRANT role TO grantee.
type GrantRole struct {
	Span
	Role    Identifier `json:"role"`
	Grantee Identifier `json:"grantee"`
}

// RevokeRole represents REVOKE role FROM revokee.
type RevokeRole struct {
	Span
	Role    Identifier `json:"role"`
	Revokee Identifier `json:"revokee"`
}

// ListPermissions represents LIST permission [ON resource] [OF role]
// [NORECURSIVE].
type ListPermissions struct {
	Span
	Privilege   Privilege `json:"privilege"`
	NoRecursive bool      `json:"no_recursive,omitempty"`
}

// ListUsers represents LIST USERS.
type ListUsers struct {
	Span
}

// ListRoles represents LIST ROLES [OF role] [NORECURSIVE].
type ListRoles struct {
	Span
	Of          *Identifier `json:"of,omitempty"`
	NoRecursive bool        `json:"no_recursive,omitempty"`
}

func (*CreateRole) statementNode()      {}
func (*AlterRole) statementNode()       {}
func (*CreateUser) statementNode()      {}
func (*AlterUser) statementNode()       {}
func (*Grant) statementNode()           {}
func (*Revoke) statementNode()          {}
func (*GrantRole) statementNode()       {}
func (*RevokeRole) statementNode()      {}
func (*ListPermissions) statementNode() {}
func (*ListRoles) statementNode()       {}
func (*ListUsers) statementNode()       {}

func (*CreateRole) ShortName() string      { return "CREATE ROLE" }
func (*AlterRole) ShortName() string       { return "ALTER ROLE" }
func (*CreateUser) ShortName() string      { return "CREATE USER" }
func (*AlterUser) ShortName() string       { return "ALTER USER" }
func (*Grant) ShortName() string           { return "GRANT" }
func (*Revoke) ShortName() string          { return "REVOKE" }
func (*GrantRole) ShortName() string       { return "GRANT ROLE" }
func (*RevokeRole) ShortName() string      { return "REVOKE ROLE" }
func (*ListPermissions) ShortName() string { return "LIST PERMISSIONS" }
func (*ListRoles) ShortName() string       { return "LIST ROLES" }
func (*ListUsers) ShortName() string       { return "LIST USERS" }

func (s *CreateRole) String() string      { return Format(s) }
func (s *AlterRole) String() string       { return Format(s) }
func (s *CreateUser) String() string      { return Format(s) }
func (s *AlterUser) String() string       { return Format(s) }
func (s *Grant) String() string           { return Format(s) }
func (s *Revoke) String() string          { return Format(s) }
func (s *GrantRole) String() string       { return Format(s) }
func (s *RevokeRole) String() string      { return Format(s) }
func (s *ListPermissions) String() string { return Format(s) }
func (s *ListRoles) String() string       { return Format(s) }
func (s *ListUsers) String() string       { return Format(s) }
