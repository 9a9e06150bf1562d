package ast

import "strings"

func formatRoleOptions(sb *strings.Builder, o RoleOptions) {
	var parts []string
	if o.Password != nil {
		parts = append(parts, "PASSWORD = "+o.Password.String())
	}
	if o.Superuser != nil {
		parts = append(parts, "SUPERUSER = "+optionString(o.Superuser))
	}
	if o.Login != nil {
		parts = append(parts, "LOGIN = "+optionString(o.Login))
	}
	if o.Options != nil {
		parts = append(parts, "OPTIONS = "+o.Options.String())
	}
	if len(parts) == 0 {
		return
	}
	sb.WriteString(" WITH ")
	sb.WriteString(strings.Join(parts, " AND "))
}

func formatCreateRole(sb *strings.Builder, s *CreateRole) {
	sb.WriteString("CREATE ROLE ")
	writeIfNotExists(sb, s.IfNotExists)
	sb.WriteString(s.Name.String())
	formatRoleOptions(sb, s.Options)
}

func formatAlterRole(sb *strings.Builder, s *AlterRole) {
	sb.WriteString("ALTER ROLE ")
	writeIfExists(sb, s.IfExists)
	sb.WriteString(s.Name.String())
	formatRoleOptions(sb, s.Options)
}

func formatUserOptions(sb *strings.Builder, o UserOptions) {
	if o.Password != nil {
		sb.WriteString(" WITH PASSWORD ")
		sb.WriteString(o.Password.String())
	}
	if o.Superuser != nil {
		if *o.Superuser {
			sb.WriteString(" SUPERUSER")
		} else {
			sb.WriteString(" NOSUPERUSER")
		}
	}
}

func formatCreateUser(sb *strings.Builder, s *CreateUser) {
	sb.WriteString("CREATE USER ")
	writeIfNotExists(sb, s.IfNotExists)
	sb.WriteString(s.Name.String())
	formatUserOptions(sb, s.Options)
}

func formatAlterUser(sb *strings.Builder, s *AlterUser) {
	sb.WriteString("ALTER USER ")
	writeIfExists(sb, s.IfExists)
	sb.WriteString(s.Name.String())
	formatUserOptions(sb, s.Options)
}

// formatPrivilege writes GRANT/REVOKE permission ON resource TO/FROM role.
func formatPrivilege(sb *strings.Builder, verb, prep string, p Privilege) {
	sb.WriteString(verb)
	sb.WriteString(" ")
	sb.WriteString(p.Permission.String())
	if p.Resource != nil {
		sb.WriteString(" ON ")
		sb.WriteString(p.Resource.String())
	}
	if p.Role != nil {
		sb.WriteString(" ")
		sb.WriteString(prep)
		sb.WriteString(" ")
		sb.WriteString(p.Role.String())
	}
}

func formatListPermissions(sb *strings.Builder, s *ListPermissions) {
	formatPrivilege(sb, "LIST", "OF", s.Privilege)
	if s.NoRecursive {
		sb.WriteString(" NORECURSIVE")
	}
}

func formatListRoles(sb *strings.Builder, s *ListRoles) {
	sb.WriteString("LIST ROLES")
	if s.Of != nil {
		sb.WriteString(" OF ")
		sb.WriteString(s.Of.String())
	}
	if s.NoRecursive {
		sb.WriteString(" NORECURSIVE")
	}
}
