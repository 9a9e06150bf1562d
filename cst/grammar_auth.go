package cst

import "github.com/sqlc-dev/cqlast/token"

func (p *parser) createRole() *Node {
	n := newNode(KindCreateRole)
	if !p.expect(n, token.CREATE, token.ROLE) || !p.optional(n, token.IF, p.ifNotExists) || !need(n, p.identifier()) {
		return nil
	}
	return p.clauses(n, clause{token.WITH, p.roleOptions})
}

func (p *parser) alterRole() *Node {
	n := newNode(KindAlterRole)
	if !p.expect(n, token.ALTER, token.ROLE) || !p.optional(n, token.IF, p.ifExists) || !need(n, p.identifier()) {
		return nil
	}
	return p.clauses(n, clause{token.WITH, p.roleOptions})
}

// roleOptions parses WITH option = value (AND option = value)* where option is
// one of PASSWORD, SUPERUSER, LOGIN or OPTIONS.
func (p *parser) roleOptions() *Node {
	n := newNode(KindRoleOptions)
	if !p.expect(n, token.WITH) || !p.andList(n, p.roleOption) {
		return nil
	}
	return n
}

func (p *parser) roleOption() *Node {
	if !p.at(token.PASSWORD, token.SUPERUSER, token.LOGIN, token.OPTIONS) {
		p.fail()
		return nil
	}
	n := newNode(KindRoleOption, p.take(KindKeyword))
	if !p.expect(n, token.EQ) || !need(n, p.term()) {
		return nil
	}
	return n
}

func (p *parser) createUser() *Node {
	n := newNode(KindCreateUser)
	if !p.expect(n, token.CREATE, token.USER) || !p.optional(n, token.IF, p.ifNotExists) || !need(n, p.identifier()) {
		return nil
	}
	return p.userOptions(n)
}

func (p *parser) alterUser() *Node {
	n := newNode(KindAlterUser)
	if !p.expect(n, token.ALTER, token.USER) || !p.optional(n, token.IF, p.ifExists) || !need(n, p.identifier()) {
		return nil
	}
	return p.userOptions(n)
}

// userOptions appends [WITH PASSWORD 'pw'] [SUPERUSER | NOSUPERUSER] to n.
func (p *parser) userOptions(n *Node) *Node {
	return p.clauses(n,
		clause{token.WITH, p.userPassword},
		clause{token.SUPERUSER, p.userSuperuser},
		clause{token.NOSUPERUSER, p.userSuperuser},
	)
}

func (p *parser) userPassword() *Node {
	n := newNode(KindUserPassword)
	if !p.expect(n, token.WITH, token.PASSWORD) || !need(n, p.term()) {
		return nil
	}
	return n
}

func (p *parser) userSuperuser() *Node {
	return newNode(KindUserSuperuser, p.take(KindKeyword))
}

// permission parses ALL [PERMISSIONS] or a single permission name with an
// optional PERMISSION suffix.
func (p *parser) permission() *Node {
	switch p.cur() {
	case token.ALL, token.ALTER, token.AUTHORIZE, token.DESCRIBE, token.EXECUTE,
		token.CREATE, token.DROP, token.MODIFY, token.SELECT:
	default:
		p.fail()
		return nil
	}
	n := newNode(KindPermission, p.take(KindKeyword))
	if p.at(token.PERMISSIONS, token.PERMISSION) {
		n.add(p.take(KindKeyword))
	}
	return n
}

// resource parses the target of a permission:
//
//	ALL FUNCTIONS [IN KEYSPACE ks] | ALL KEYSPACES | ALL ROLES | ALL MBEANS
//	FUNCTION f [(type, ...)] | KEYSPACE ks | ROLE r | MBEAN m | MBEANS m | [TABLE] t
//
// A resource keyword not followed by a name is itself the name.
func (p *parser) resource() *Node {
	n := newNode(KindResource)
	switch {
	case p.at(token.ALL):
		n.add(p.take(KindKeyword))
		switch {
		case p.at(token.FUNCTIONS):
			n.add(p.take(KindKeyword))
			if p.at(token.IN) {
				if !p.expect(n, token.IN, token.KEYSPACE) || !need(n, p.identifier()) {
					return nil
				}
			}
		case p.at(token.KEYSPACES, token.ROLES), p.wordAt(0, "MBEANS"):
			n.add(p.take(KindKeyword))
		default:
			p.fail()
			return nil
		}
	case p.at(token.FUNCTION) && isNameToken(p.tokenAt(1)):
		n.add(p.take(KindKeyword))
		if !need(n, p.qualifiedName()) {
			return nil
		}
		if p.at(token.LPAREN) && !need(n, p.dataTypeList(KindArgumentTypes)) {
			return nil
		}
	case p.at(token.TABLE) && isNameToken(p.tokenAt(1)):
		n.add(p.take(KindKeyword))
		if !need(n, p.qualifiedName()) {
			return nil
		}
	case (p.wordAt(0, "MBEAN") || p.wordAt(0, "MBEANS")) && isNameToken(p.tokenAt(1)):
		n.add(p.take(KindKeyword))
		if !need(n, p.identifier()) {
			return nil
		}
	case p.at(token.KEYSPACE, token.ROLE) && isNameToken(p.tokenAt(1)):
		n.add(p.take(KindKeyword))
		if !need(n, p.identifier()) {
			return nil
		}
	default:
		if !need(n, p.qualifiedName()) {
			return nil
		}
	}
	return n
}

// grant parses GRANT permission ON resource TO role.
func (p *parser) grant() *Node {
	n := newNode(KindGrant)
	if !p.expect(n, token.GRANT) || !need(n, p.permission()) || !need(n, p.resourceOn()) {
		return nil
	}
	if !p.expect(n, token.TO) || !need(n, p.identifier()) {
		return nil
	}
	return n
}

// grantRole parses GRANT role TO role.
func (p *parser) grantRole() *Node {
	n := newNode(KindGrantRole)
	if !p.expect(n, token.GRANT) || !need(n, p.identifier()) || !p.expect(n, token.TO) || !need(n, p.identifier()) {
		return nil
	}
	return n
}

// revoke parses REVOKE permission ON resource FROM role.
func (p *parser) revoke() *Node {
	n := newNode(KindRevoke)
	if !p.expect(n, token.REVOKE) || !need(n, p.permission()) || !need(n, p.resourceOn()) {
		return nil
	}
	if !p.expect(n, token.FROM) || !need(n, p.identifier()) {
		return nil
	}
	return n
}

// revokeRole parses REVOKE role FROM role.
func (p *parser) revokeRole() *Node {
	n := newNode(KindRevokeRole)
	if !p.expect(n, token.REVOKE) || !need(n, p.identifier()) || !p.expect(n, token.FROM) || !need(n, p.identifier()) {
		return nil
	}
	return n
}

// listPermissions parses LIST permission [ON resource] [OF role] [NORECURSIVE].
func (p *parser) listPermissions() *Node {
	n := newNode(KindListPermissions)
	if !p.expect(n, token.LIST) || !need(n, p.permission()) {
		return nil
	}
	return p.clauses(n,
		clause{token.ON, p.resourceOn},
		clause{token.OF, p.roleOf},
		clause{token.NORECURSIVE, p.noRecursive},
	)
}

// resourceOn parses ON resource and returns the resource with ON as its
// first child.
func (p *parser) resourceOn() *Node {
	on := p.accept(token.ON)
	if on == nil {
		return nil
	}
	r := p.resource()
	if r == nil {
		return nil
	}
	r.Children = append([]*Node{on}, r.Children...)
	r.Start = on.Start
	return r
}

// listUsers parses LIST USERS.
func (p *parser) listUsers() *Node {
	n := newNode(KindListUsers)
	if !p.expect(n, token.LIST) {
		return nil
	}
	if !p.wordAt(0, "USERS") {
		p.fail()
		return nil
	}
	n.add(p.take(KindKeyword))
	return n
}

// listRoles parses LIST ROLES [OF role] [NORECURSIVE].
func (p *parser) listRoles() *Node {
	n := newNode(KindListRoles)
	if !p.expect(n, token.LIST, token.ROLES) {
		return nil
	}
	return p.clauses(n,
		clause{token.OF, p.roleOf},
		clause{token.NORECURSIVE, p.noRecursive},
	)
}

func (p *parser) roleOf() *Node {
	n := newNode(KindRoleOf)
	if !p.expect(n, token.OF) || !need(n, p.identifier()) {
		return nil
	}
	return n
}

func (p *parser) noRecursive() *Node {
	return newNode(KindNoRecursive, p.take(KindKeyword))
}
