package parser

import (
	"github.com/sqlc-dev/cqlast/ast"
	"github.com/sqlc-dev/cqlast/cst"
	"github.com/sqlc-dev/cqlast/token"
)

func (b *builder) roleOptions(n *cst.Node) ast.RoleOptions {
	var o ast.RoleOptions
	for _, opt := range n.ChildrenOf(cst.KindRoleOption) {
		v := b.term(opt.Children[2])
		switch opt.Children[0].Token.Token {
		case token.PASSWORD:
			o.Password = v
		case token.SUPERUSER:
			o.Superuser = v
		case token.LOGIN:
			o.Login = v
		case token.OPTIONS:
			o.Options = v
		}
	}
	return o
}

func (b *builder) createRole(n *cst.Node) ast.Statement {
	expect(n, cst.KindCreateRole)
	return &ast.CreateRole{
		Span:        span(n),
		IfNotExists: n.Child(cst.KindIfNotExists) != nil,
		Name:        b.ident(n.Child(cst.KindIdentifier)),
		Options:     b.roleOptions(n.Child(cst.KindRoleOptions)),
	}
}

func (b *builder) alterRole(n *cst.Node) ast.Statement {
	expect(n, cst.KindAlterRole)
	return &ast.AlterRole{
		Span:     span(n),
		IfExists: n.Child(cst.KindIfExists) != nil,
		Name:     b.ident(n.Child(cst.KindIdentifier)),
		Options:  b.roleOptions(n.Child(cst.KindRoleOptions)),
	}
}

func (b *builder) userOptions(n *cst.Node) ast.UserOptions {
	var o ast.UserOptions
	if pw := n.Child(cst.KindUserPassword); pw != nil {
		o.Password = b.term(pw.Children[2])
	}
	if su := n.Child(cst.KindUserSuperuser); su != nil {
		v := su.HasKeyword(token.SUPERUSER)
		o.Superuser = &v
	}
	return o
}

func (b *builder) createUser(n *cst.Node) ast.Statement {
	expect(n, cst.KindCreateUser)
	return &ast.CreateUser{
		Span:        span(n),
		IfNotExists: n.Child(cst.KindIfNotExists) != nil,
		Name:        b.ident(n.Child(cst.KindIdentifier)),
		Options:     b.userOptions(n),
	}
}

func (b *builder) alterUser(n *cst.Node) ast.Statement {
	expect(n, cst.KindAlterUser)
	return &ast.AlterUser{
		Span:     span(n),
		IfExists: n.Child(cst.KindIfExists) != nil,
		Name:     b.ident(n.Child(cst.KindIdentifier)),
		Options:  b.userOptions(n),
	}
}

// privilege reads the permission, resource and role of a GRANT, REVOKE or
// LIST statement. role is the node naming the grantee, if any.
func (b *builder) privilege(n *cst.Node, role *cst.Node) ast.Privilege {
	p := ast.Privilege{
		Permission: ast.Permission(n.Child(cst.KindPermission).Children[0].Token.Token.String()),
		Role:       b.identPtr(role),
	}
	if r := n.Child(cst.KindResource); r != nil {
		p.Resource = b.resource(r)
	}
	return p
}

// resource builds the target of a permission. A bare name is a table.
func (b *builder) resource(n *cst.Node) *ast.Resource {
	expect(n, cst.KindResource)
	r := &ast.Resource{Kind: ast.ResourceTable}
	switch {
	case n.HasKeyword(token.FUNCTIONS):
		r.Kind = ast.ResourceAllFunctions
		r.Keyspace = b.identPtr(n.Child(cst.KindIdentifier))
		return r
	case n.HasKeyword(token.KEYSPACES):
		r.Kind = ast.ResourceAllKeyspaces
		return r
	case n.HasKeyword(token.ROLES):
		r.Kind = ast.ResourceAllRoles
		return r
	case n.HasKeyword(token.ALL) && n.HasWord("MBEANS"):
		r.Kind = ast.ResourceAllMBeans
		return r
	case n.HasWord("MBEAN"):
		r.Kind = ast.ResourceMBean
	case n.HasWord("MBEANS"):
		r.Kind = ast.ResourceMBeans
	case n.HasKeyword(token.FUNCTION):
		r.Kind = ast.ResourceFunction
		if args := n.Child(cst.KindArgumentTypes); args != nil {
			r.ArgTypes = b.dataTypes(args)
		}
	case n.HasKeyword(token.KEYSPACE):
		r.Kind = ast.ResourceKeyspace
	case n.HasKeyword(token.ROLE):
		r.Kind = ast.ResourceRole
	}
	if qn := n.Child(cst.KindQualifiedName); qn != nil {
		r.Name = b.qualifiedName(qn)
	} else {
		r.Name = ast.QualifiedName{Name: b.ident(n.Child(cst.KindIdentifier))}
	}
	return r
}

func (b *builder) grant(n *cst.Node) ast.Statement {
	expect(n, cst.KindGrant)
	return &ast.Grant{Span: span(n), Privilege: b.privilege(n, n.Child(cst.KindIdentifier))}
}

func (b *builder) revoke(n *cst.Node) ast.Statement {
	expect(n, cst.KindRevoke)
	return &ast.Revoke{Span: span(n), Privilege: b.privilege(n, n.Child(cst.KindIdentifier))}
}

func (b *builder) grantRole(n *cst.Node) ast.Statement {
	expect(n, cst.KindGrantRole)
	ids := n.ChildrenOf(cst.KindIdentifier)
	return &ast.GrantRole{Span: span(n), Role: b.ident(ids[0]), Grantee: b.ident(ids[1])}
}

func (b *builder) revokeRole(n *cst.Node) ast.Statement {
	expect(n, cst.KindRevokeRole)
	ids := n.ChildrenOf(cst.KindIdentifier)
	return &ast.RevokeRole{Span: span(n), Role: b.ident(ids[0]), Revokee: b.ident(ids[1])}
}

func (b *builder) listPermissions(n *cst.Node) ast.Statement {
	expect(n, cst.KindListPermissions)
	var of *cst.Node
	if r := n.Child(cst.KindRoleOf); r != nil {
		of = r.Child(cst.KindIdentifier)
	}
	return &ast.ListPermissions{
		Span:        span(n),
		Privilege:   b.privilege(n, of),
		NoRecursive: n.Child(cst.KindNoRecursive) != nil,
	}
}

func (b *builder) listUsers(n *cst.Node) ast.Statement {
	expect(n, cst.KindListUsers)
	return &ast.ListUsers{Span: span(n)}
}

func (b *builder) listRoles(n *cst.Node) ast.Statement {
	expect(n, cst.KindListRoles)
	s := &ast.ListRoles{Span: span(n), NoRecursive: n.Child(cst.KindNoRecursive) != nil}
	if r := n.Child(cst.KindRoleOf); r != nil {
		s.Of = b.identPtr(r.Child(cst.KindIdentifier))
	}
	return s
}
