package syntax

import "fmt"

// Kind identifies the syntactic category of a tree node. The catalogue is
// closed: every kind the checker can encounter is declared here, and the
// indent package registers a handler for each one.
type Kind int

const (
	TRANSLATION_UNIT Kind = iota

	// Declarations
	CLASS_DECL
	STRUCT_DECL
	UNION_DECL
	CLASS_TEMPLATE
	CLASS_TEMPLATE_PARTIAL_SPECIALIZATION
	ENUM_DECL
	ENUM_CONSTANT_DECL
	FIELD_DECL
	FUNCTION_DECL
	FUNCTION_TEMPLATE
	CXX_METHOD
	CONSTRUCTOR
	DESTRUCTOR
	CONVERSION_FUNCTION
	NAMESPACE
	NAMESPACE_ALIAS
	LINKAGE_SPEC
	TYPEDEF_DECL
	TYPE_ALIAS_DECL
	VAR_DECL
	PARM_DECL
	CXX_ACCESS_SPEC_DECL
	CXX_BASE_SPECIFIER
	USING_DECLARATION
	USING_DIRECTIVE
	UNEXPOSED_DECL

	// Template parameters
	TEMPLATE_TYPE_PARAMETER
	TEMPLATE_NON_TYPE_PARAMETER
	TEMPLATE_TEMPLATE_PARAMETER

	// Statements
	COMPOUND_STMT
	DECL_STMT
	IF_STMT
	FOR_STMT
	CXX_FOR_RANGE_STMT
	WHILE_STMT
	DO_STMT
	SWITCH_STMT
	CASE_STMT
	DEFAULT_STMT
	BREAK_STMT
	CONTINUE_STMT
	RETURN_STMT
	GOTO_STMT
	INDIRECT_GOTO_STMT
	LABEL_STMT
	NULL_STMT
	CXX_TRY_STMT
	CXX_CATCH_STMT
	ASM_STMT
	UNEXPOSED_STMT

	// Expressions
	CALL_EXPR
	DECL_REF_EXPR
	MEMBER_REF
	MEMBER_REF_EXPR
	OVERLOADED_DECL_REF
	BINARY_OPERATOR
	UNARY_OPERATOR
	COMPOUND_ASSIGNMENT_OPERATOR
	CONDITIONAL_OPERATOR
	PAREN_EXPR
	INIT_LIST_EXPR
	COMPOUND_LITERAL_EXPR
	ARRAY_SUBSCRIPT_EXPR
	CSTYLE_CAST_EXPR
	CXX_STATIC_CAST_EXPR
	CXX_DYNAMIC_CAST_EXPR
	CXX_CONST_CAST_EXPR
	CXX_REINTERPRET_CAST_EXPR
	CXX_FUNCTIONAL_CAST_EXPR
	CXX_NEW_EXPR
	CXX_DELETE_EXPR
	CXX_THIS_EXPR
	CXX_THROW_EXPR
	CXX_TYPEID_EXPR
	CXX_UNARY_EXPR
	BLOCK_EXPR
	STMT_EXPR
	GENERIC_SELECTION_EXPR
	PACK_EXPANSION_EXPR
	SIZE_OF_PACK_EXPR
	ADDR_LABEL_EXPR
	GNU_NULL_EXPR
	UNEXPOSED_EXPR

	// Literals
	INTEGER_LITERAL
	FLOATING_LITERAL
	IMAGINARY_LITERAL
	CHARACTER_LITERAL
	STRING_LITERAL
	CXX_BOOL_LITERAL_EXPR
	CXX_NULL_PTR_LITERAL_EXPR

	// References
	TYPE_REF
	TEMPLATE_REF
	NAMESPACE_REF
	LABEL_REF

	// Preprocessor
	MACRO_DEFINITION
	MACRO_INSTANTIATION
	INCLUSION_DIRECTIVE
	PREPROCESSING_DIRECTIVE

	// Attributes and fallbacks
	UNEXPOSED_ATTR
	INVALID_CODE
	INVALID_FILE
	NO_DECL_FOUND
	NOT_IMPLEMENTED

	kindCount // sentinel, keep last
)

var kindNames = map[Kind]string{
	TRANSLATION_UNIT:                      "TRANSLATION_UNIT",
	CLASS_DECL:                            "CLASS_DECL",
	STRUCT_DECL:                           "STRUCT_DECL",
	UNION_DECL:                            "UNION_DECL",
	CLASS_TEMPLATE:                        "CLASS_TEMPLATE",
	CLASS_TEMPLATE_PARTIAL_SPECIALIZATION: "CLASS_TEMPLATE_PARTIAL_SPECIALIZATION",
	ENUM_DECL:                             "ENUM_DECL",
	ENUM_CONSTANT_DECL:                    "ENUM_CONSTANT_DECL",
	FIELD_DECL:                            "FIELD_DECL",
	FUNCTION_DECL:                         "FUNCTION_DECL",
	FUNCTION_TEMPLATE:                     "FUNCTION_TEMPLATE",
	CXX_METHOD:                            "CXX_METHOD",
	CONSTRUCTOR:                           "CONSTRUCTOR",
	DESTRUCTOR:                            "DESTRUCTOR",
	CONVERSION_FUNCTION:                   "CONVERSION_FUNCTION",
	NAMESPACE:                             "NAMESPACE",
	NAMESPACE_ALIAS:                       "NAMESPACE_ALIAS",
	LINKAGE_SPEC:                          "LINKAGE_SPEC",
	TYPEDEF_DECL:                          "TYPEDEF_DECL",
	TYPE_ALIAS_DECL:                       "TYPE_ALIAS_DECL",
	VAR_DECL:                              "VAR_DECL",
	PARM_DECL:                             "PARM_DECL",
	CXX_ACCESS_SPEC_DECL:                  "CXX_ACCESS_SPEC_DECL",
	CXX_BASE_SPECIFIER:                    "CXX_BASE_SPECIFIER",
	USING_DECLARATION:                     "USING_DECLARATION",
	USING_DIRECTIVE:                       "USING_DIRECTIVE",
	UNEXPOSED_DECL:                        "UNEXPOSED_DECL",
	TEMPLATE_TYPE_PARAMETER:               "TEMPLATE_TYPE_PARAMETER",
	TEMPLATE_NON_TYPE_PARAMETER:           "TEMPLATE_NON_TYPE_PARAMETER",
	TEMPLATE_TEMPLATE_PARAMETER:           "TEMPLATE_TEMPLATE_PARAMETER",
	COMPOUND_STMT:                         "COMPOUND_STMT",
	DECL_STMT:                             "DECL_STMT",
	IF_STMT:                               "IF_STMT",
	FOR_STMT:                              "FOR_STMT",
	CXX_FOR_RANGE_STMT:                    "CXX_FOR_RANGE_STMT",
	WHILE_STMT:                            "WHILE_STMT",
	DO_STMT:                               "DO_STMT",
	SWITCH_STMT:                           "SWITCH_STMT",
	CASE_STMT:                             "CASE_STMT",
	DEFAULT_STMT:                          "DEFAULT_STMT",
	BREAK_STMT:                            "BREAK_STMT",
	CONTINUE_STMT:                         "CONTINUE_STMT",
	RETURN_STMT:                           "RETURN_STMT",
	GOTO_STMT:                             "GOTO_STMT",
	INDIRECT_GOTO_STMT:                    "INDIRECT_GOTO_STMT",
	LABEL_STMT:                            "LABEL_STMT",
	NULL_STMT:                             "NULL_STMT",
	CXX_TRY_STMT:                          "CXX_TRY_STMT",
	CXX_CATCH_STMT:                        "CXX_CATCH_STMT",
	ASM_STMT:                              "ASM_STMT",
	UNEXPOSED_STMT:                        "UNEXPOSED_STMT",
	CALL_EXPR:                             "CALL_EXPR",
	DECL_REF_EXPR:                         "DECL_REF_EXPR",
	MEMBER_REF:                            "MEMBER_REF",
	MEMBER_REF_EXPR:                       "MEMBER_REF_EXPR",
	OVERLOADED_DECL_REF:                   "OVERLOADED_DECL_REF",
	BINARY_OPERATOR:                       "BINARY_OPERATOR",
	UNARY_OPERATOR:                        "UNARY_OPERATOR",
	COMPOUND_ASSIGNMENT_OPERATOR:          "COMPOUND_ASSIGNMENT_OPERATOR",
	CONDITIONAL_OPERATOR:                  "CONDITIONAL_OPERATOR",
	PAREN_EXPR:                            "PAREN_EXPR",
	INIT_LIST_EXPR:                        "INIT_LIST_EXPR",
	COMPOUND_LITERAL_EXPR:                 "COMPOUND_LITERAL_EXPR",
	ARRAY_SUBSCRIPT_EXPR:                  "ARRAY_SUBSCRIPT_EXPR",
	CSTYLE_CAST_EXPR:                      "CSTYLE_CAST_EXPR",
	CXX_STATIC_CAST_EXPR:                  "CXX_STATIC_CAST_EXPR",
	CXX_DYNAMIC_CAST_EXPR:                 "CXX_DYNAMIC_CAST_EXPR",
	CXX_CONST_CAST_EXPR:                   "CXX_CONST_CAST_EXPR",
	CXX_REINTERPRET_CAST_EXPR:             "CXX_REINTERPRET_CAST_EXPR",
	CXX_FUNCTIONAL_CAST_EXPR:              "CXX_FUNCTIONAL_CAST_EXPR",
	CXX_NEW_EXPR:                          "CXX_NEW_EXPR",
	CXX_DELETE_EXPR:                       "CXX_DELETE_EXPR",
	CXX_THIS_EXPR:                         "CXX_THIS_EXPR",
	CXX_THROW_EXPR:                        "CXX_THROW_EXPR",
	CXX_TYPEID_EXPR:                       "CXX_TYPEID_EXPR",
	CXX_UNARY_EXPR:                        "CXX_UNARY_EXPR",
	BLOCK_EXPR:                            "BLOCK_EXPR",
	STMT_EXPR:                             "STMT_EXPR",
	GENERIC_SELECTION_EXPR:                "GENERIC_SELECTION_EXPR",
	PACK_EXPANSION_EXPR:                   "PACK_EXPANSION_EXPR",
	SIZE_OF_PACK_EXPR:                     "SIZE_OF_PACK_EXPR",
	ADDR_LABEL_EXPR:                       "ADDR_LABEL_EXPR",
	GNU_NULL_EXPR:                         "GNU_NULL_EXPR",
	UNEXPOSED_EXPR:                        "UNEXPOSED_EXPR",
	INTEGER_LITERAL:                       "INTEGER_LITERAL",
	FLOATING_LITERAL:                      "FLOATING_LITERAL",
	IMAGINARY_LITERAL:                     "IMAGINARY_LITERAL",
	CHARACTER_LITERAL:                     "CHARACTER_LITERAL",
	STRING_LITERAL:                        "STRING_LITERAL",
	CXX_BOOL_LITERAL_EXPR:                 "CXX_BOOL_LITERAL_EXPR",
	CXX_NULL_PTR_LITERAL_EXPR:             "CXX_NULL_PTR_LITERAL_EXPR",
	TYPE_REF:                              "TYPE_REF",
	TEMPLATE_REF:                          "TEMPLATE_REF",
	NAMESPACE_REF:                         "NAMESPACE_REF",
	LABEL_REF:                             "LABEL_REF",
	MACRO_DEFINITION:                      "MACRO_DEFINITION",
	MACRO_INSTANTIATION:                   "MACRO_INSTANTIATION",
	INCLUSION_DIRECTIVE:                   "INCLUSION_DIRECTIVE",
	PREPROCESSING_DIRECTIVE:               "PREPROCESSING_DIRECTIVE",
	UNEXPOSED_ATTR:                        "UNEXPOSED_ATTR",
	INVALID_CODE:                          "INVALID_CODE",
	INVALID_FILE:                          "INVALID_FILE",
	NO_DECL_FOUND:                         "NO_DECL_FOUND",
	NOT_IMPLEMENTED:                       "NOT_IMPLEMENTED",
}

var kindByName map[string]Kind

func init() {
	kindByName = make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		kindByName[name] = k
	}
}

// String returns the string representation of Kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindFromName resolves a kind name as it appears in AST dumps. The second
// result is false for names outside the catalogue.
func KindFromName(name string) (Kind, bool) {
	k, ok := kindByName[name]
	return k, ok
}

// AllKinds returns every declared kind. Used to validate that a handler
// registry covers the whole catalogue.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, int(kindCount))
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}

	return kinds
}
