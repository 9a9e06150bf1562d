package cst

// Kind names the grammar rule that produced a node.
type Kind string

// Leaf and structural kinds.
const (
	KindSourceFile Kind = "source_file"
	KindError      Kind = "ERROR"
	KindKeyword    Kind = "keyword"
	KindIdentifier Kind = "identifier"
	KindLiteral    Kind = "literal"
)

// Statement kinds.
const (
	KindAlterKeyspace          Kind = "alter_keyspace"
	KindAlterMaterializedView  Kind = "alter_materialized_view"
	KindAlterRole              Kind = "alter_role"
	KindAlterTable             Kind = "alter_table"
	KindAlterType              Kind = "alter_type"
	KindAlterUser              Kind = "alter_user"
	KindApplyBatch             Kind = "apply_batch"
	KindCreateAggregate        Kind = "create_aggregate"
	KindCreateFunction         Kind = "create_function"
	KindCreateIndex            Kind = "create_index"
	KindCreateKeyspace         Kind = "create_keyspace"
	KindCreateMaterializedView Kind = "create_materialized_view"
	KindCreateRole             Kind = "create_role"
	KindCreateTable            Kind = "create_table"
	KindCreateTrigger          Kind = "create_trigger"
	KindCreateType             Kind = "create_type"
	KindCreateUser             Kind = "create_user"
	KindDeleteStatement        Kind = "delete_statement"
	KindDropAggregate          Kind = "drop_aggregate"
	KindDropFunction           Kind = "drop_function"
	KindDropIndex              Kind = "drop_index"
	KindDropKeyspace           Kind = "drop_keyspace"
	KindDropMaterializedView   Kind = "drop_materialized_view"
	KindDropRole               Kind = "drop_role"
	KindDropTable              Kind = "drop_table"
	KindDropTrigger            Kind = "drop_trigger"
	KindDropType               Kind = "drop_type"
	KindDropUser               Kind = "drop_user"
	KindGrant                  Kind = "grant"
	KindGrantRole              Kind = "grant_role"
	KindInsertStatement        Kind = "insert_statement"
	KindListPermissions        Kind = "list_permissions"
	KindListUsers              Kind = "list_users"
	KindListRoles              Kind = "list_roles"
	KindRevoke                 Kind = "revoke"
	KindRevokeRole             Kind = "revoke_role"
	KindSelectStatement        Kind = "select_statement"
	KindTruncate               Kind = "truncate"
	KindUpdate                 Kind = "update"
	KindUse                    Kind = "use"
)

// Clause and expression kinds.
const (
	KindQualifiedName     Kind = "qualified_name"
	KindConstant          Kind = "constant"
	KindListLiteral       Kind = "list_literal"
	KindSetLiteral        Kind = "set_literal"
	KindMapLiteral        Kind = "map_literal"
	KindMapEntry          Kind = "map_entry"
	KindTupleLiteral      Kind = "tuple_literal"
	KindFunctionCall      Kind = "function_call"
	KindBindMarker        Kind = "bind_marker"
	KindOperand           Kind = "operand"
	KindDataType          Kind = "data_type"
	KindSelectElements    Kind = "select_elements"
	KindSelectElement     Kind = "select_element"
	KindWhereSpec         Kind = "where_spec"
	KindIfSpec            Kind = "if_spec"
	KindIfExists          Kind = "if_exists"
	KindIfNotExists       Kind = "if_not_exists"
	KindRelation          Kind = "relation"
	KindColumnList        Kind = "column_list"
	KindInValues          Kind = "in_values"
	KindGroupBySpec       Kind = "group_by_spec"
	KindOrderSpec         Kind = "order_spec"
	KindOrderElement      Kind = "order_element"
	KindLimitSpec         Kind = "limit_spec"
	KindPerPartitionLimit Kind = "per_partition_limit"
	KindAllowFiltering    Kind = "allow_filtering"
	KindBeginBatch        Kind = "begin_batch"
	KindUsingSpec         Kind = "using_spec"
	KindUsingTTL          Kind = "using_ttl"
	KindUsingTimestamp    Kind = "using_timestamp"
	KindInsertValues      Kind = "insert_values"
	KindInsertJSON        Kind = "insert_json"
	KindAssignment        Kind = "assignment"
	KindDeleteColumn      Kind = "delete_column"
	KindColumnDefinition  Kind = "column_definition"
	KindPrimaryKeySpec    Kind = "primary_key_spec"
	KindPartitionKey      Kind = "partition_key"
	KindTableOptions      Kind = "table_options"
	KindTableProperty     Kind = "table_property"
	KindClusteringOrder   Kind = "clustering_order"
	KindCompactStorage    Kind = "compact_storage"
	KindTableID           Kind = "table_id"
	KindAlterTableAdd     Kind = "alter_table_add"
	KindAlterTableDrop    Kind = "alter_table_drop"
	KindDropCompact       Kind = "alter_table_drop_compact_storage"
	KindAlterTableRename  Kind = "alter_table_rename"
	KindAlterColumnType   Kind = "alter_column_type"
	KindAlterTypeAdd      Kind = "alter_type_add"
	KindAlterTypeRename   Kind = "alter_type_rename"
	KindRenameItem        Kind = "rename_item"
	KindIndexColumn       Kind = "index_column"
	KindIndexUsing        Kind = "index_using"
	KindFieldDefinition   Kind = "field_definition"
	KindFunctionParameter Kind = "function_parameter"
	KindFunctionNullMode  Kind = "function_null_mode"
	KindFunctionReturns   Kind = "function_returns"
	KindFunctionBody      Kind = "function_body"
	KindArgumentTypes     Kind = "argument_types"
	KindAggregateSfunc    Kind = "aggregate_sfunc"
	KindAggregateStype    Kind = "aggregate_stype"
	KindAggregateFinal    Kind = "aggregate_finalfunc"
	KindAggregateInitcond Kind = "aggregate_initcond"
	KindTriggerTable      Kind = "trigger_table"
	KindTriggerUsing      Kind = "trigger_using"
	KindKeyspaceOptions   Kind = "keyspace_options"
	KindKeyspaceOption    Kind = "keyspace_option"
	KindRoleOptions       Kind = "role_options"
	KindRoleOption        Kind = "role_option"
	KindUserPassword      Kind = "user_password"
	KindUserSuperuser     Kind = "user_superuser"
	KindPermission        Kind = "permission"
	KindResource          Kind = "resource"
	KindRoleOf            Kind = "role_of"
	KindNoRecursive       Kind = "norecursive"
)
