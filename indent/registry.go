package indent

import (
	"fmt"

	"github.com/linty-dev/linty"
	"github.com/linty-dev/linty/syntax"
)

// entry is the per-kind checking behavior. A zero entry is the common case:
// no direct check and no indent increase; such kinds inherit correctness
// through their children.
type entry struct {
	// increase gates whether children get one more indentation unit.
	increase func(cfg *linty.Config) bool
	// check runs this kind's own position check. Violations go to the
	// sink; an error is fatal.
	check func(h *handler) error
	// level may replace the parent-suggested level at construction time.
	// Only kinds with genuinely ambiguous placement set it.
	level func(h *handler, suggested Level) Level
}

// classBodyEntry covers class and struct declarations, class templates, and
// partial specializations: brace placement per the class/struct style,
// child indent gated on indent_inside_class_struct_body.
func classBodyEntry() entry {
	return entry{
		increase: func(cfg *linty.Config) bool { return cfg.IndentInsideClassStructBody },
		check: func(h *handler) error {
			return h.checkBraces(h.checker.config.BracePositionsClassStructDeclaration)
		},
	}
}

// partialSpecializationLevel widens acceptance so the specialization may sit
// flush with its parent's own level as well as at the suggested level; the
// template header can legitimately contribute either candidate.
func partialSpecializationLevel(h *handler, suggested Level) Level {
	if h.parent == nil {
		return suggested
	}

	return suggested.Widen(h.parent.level)
}

// registry is the closed kind-to-behavior table. Every kind in the syntax
// catalogue must appear here; completeness is validated at startup.
var registry = map[syntax.Kind]entry{
	syntax.TRANSLATION_UNIT: {},

	syntax.CLASS_DECL:     classBodyEntry(),
	syntax.STRUCT_DECL:    classBodyEntry(),
	syntax.CLASS_TEMPLATE: classBodyEntry(),
	syntax.CLASS_TEMPLATE_PARTIAL_SPECIALIZATION: {
		increase: func(cfg *linty.Config) bool { return cfg.IndentInsideClassStructBody },
		check: func(h *handler) error {
			return h.checkBraces(h.checker.config.BracePositionsClassStructDeclaration)
		},
		level: partialSpecializationLevel,
	},
	syntax.UNION_DECL: {},
	syntax.ENUM_DECL: {
		increase: func(cfg *linty.Config) bool { return cfg.IndentInsideClassStructBody },
	},
	syntax.ENUM_CONSTANT_DECL:  {},
	syntax.FIELD_DECL:          {},
	syntax.FUNCTION_DECL:       {},
	syntax.FUNCTION_TEMPLATE:   {},
	syntax.CXX_METHOD:          {},
	syntax.CONSTRUCTOR:         {},
	syntax.DESTRUCTOR:          {},
	syntax.CONVERSION_FUNCTION: {},
	syntax.NAMESPACE: {
		increase: func(cfg *linty.Config) bool { return cfg.IndentDeclarationsWithinNamespaceDefinition },
		check: func(h *handler) error {
			return h.checkBraces(h.checker.config.BracePositionsNamespaceDeclaration)
		},
	},
	syntax.NAMESPACE_ALIAS: {},
	syntax.LINKAGE_SPEC:    {},
	syntax.TYPEDEF_DECL: {
		check: checkFirstTokenIndent,
	},
	syntax.TYPE_ALIAS_DECL:      {},
	syntax.VAR_DECL:             {},
	syntax.PARM_DECL:            {},
	syntax.CXX_ACCESS_SPEC_DECL: {},
	syntax.CXX_BASE_SPECIFIER:   {},
	syntax.USING_DECLARATION:    {},
	syntax.USING_DIRECTIVE:      {},
	syntax.UNEXPOSED_DECL:       {},

	syntax.TEMPLATE_TYPE_PARAMETER:     {},
	syntax.TEMPLATE_NON_TYPE_PARAMETER: {},
	syntax.TEMPLATE_TEMPLATE_PARAMETER: {},

	syntax.COMPOUND_STMT:      {},
	syntax.DECL_STMT:          {},
	syntax.IF_STMT:            {},
	syntax.FOR_STMT:           {},
	syntax.CXX_FOR_RANGE_STMT: {},
	syntax.WHILE_STMT:         {},
	syntax.DO_STMT:            {},
	syntax.SWITCH_STMT: {
		increase: func(cfg *linty.Config) bool { return cfg.IndentStatementsWithinSwitchBody },
	},
	syntax.CASE_STMT:          {},
	syntax.DEFAULT_STMT:       {},
	syntax.BREAK_STMT:         {},
	syntax.CONTINUE_STMT:      {},
	syntax.RETURN_STMT:        {},
	syntax.GOTO_STMT:          {},
	syntax.INDIRECT_GOTO_STMT: {},
	syntax.LABEL_STMT:         {},
	syntax.NULL_STMT:          {},
	syntax.CXX_TRY_STMT:       {},
	syntax.CXX_CATCH_STMT:     {},
	syntax.ASM_STMT:           {},
	syntax.UNEXPOSED_STMT:     {},

	syntax.CALL_EXPR:                    {},
	syntax.DECL_REF_EXPR:                {},
	syntax.MEMBER_REF:                   {},
	syntax.MEMBER_REF_EXPR:              {},
	syntax.OVERLOADED_DECL_REF:          {},
	syntax.BINARY_OPERATOR:              {},
	syntax.UNARY_OPERATOR:               {},
	syntax.COMPOUND_ASSIGNMENT_OPERATOR: {},
	syntax.CONDITIONAL_OPERATOR:         {},
	syntax.PAREN_EXPR:                   {},
	syntax.INIT_LIST_EXPR:               {},
	syntax.COMPOUND_LITERAL_EXPR:        {},
	syntax.ARRAY_SUBSCRIPT_EXPR:         {},
	syntax.CSTYLE_CAST_EXPR:             {},
	syntax.CXX_STATIC_CAST_EXPR:         {},
	syntax.CXX_DYNAMIC_CAST_EXPR:        {},
	syntax.CXX_CONST_CAST_EXPR:          {},
	syntax.CXX_REINTERPRET_CAST_EXPR:    {},
	syntax.CXX_FUNCTIONAL_CAST_EXPR:     {},
	syntax.CXX_NEW_EXPR:                 {},
	syntax.CXX_DELETE_EXPR:              {},
	syntax.CXX_THIS_EXPR:                {},
	syntax.CXX_THROW_EXPR:               {},
	syntax.CXX_TYPEID_EXPR:              {},
	syntax.CXX_UNARY_EXPR:               {},
	syntax.BLOCK_EXPR:                   {},
	syntax.STMT_EXPR:                    {},
	syntax.GENERIC_SELECTION_EXPR:       {},
	syntax.PACK_EXPANSION_EXPR:          {},
	syntax.SIZE_OF_PACK_EXPR:            {},
	syntax.ADDR_LABEL_EXPR:              {},
	syntax.GNU_NULL_EXPR:                {},
	syntax.UNEXPOSED_EXPR:               {},

	syntax.INTEGER_LITERAL:           {},
	syntax.FLOATING_LITERAL:          {},
	syntax.IMAGINARY_LITERAL:         {},
	syntax.CHARACTER_LITERAL:         {},
	syntax.STRING_LITERAL:            {},
	syntax.CXX_BOOL_LITERAL_EXPR:     {},
	syntax.CXX_NULL_PTR_LITERAL_EXPR: {},

	syntax.TYPE_REF:      {},
	syntax.TEMPLATE_REF:  {},
	syntax.NAMESPACE_REF: {},
	syntax.LABEL_REF:     {},

	syntax.MACRO_DEFINITION:        {},
	syntax.MACRO_INSTANTIATION:     {},
	syntax.INCLUSION_DIRECTIVE:     {},
	syntax.PREPROCESSING_DIRECTIVE: {},

	syntax.UNEXPOSED_ATTR:  {},
	syntax.INVALID_CODE:    {},
	syntax.INVALID_FILE:    {},
	syntax.NO_DECL_FOUND:   {},
	syntax.NOT_IMPLEMENTED: {},
}

// The registry must cover the whole kind catalogue: a kind that slipped
// through would surface mid-traversal as a dispatch error instead of at
// startup.
func init() {
	for _, k := range syntax.AllKinds() {
		if _, ok := registry[k]; !ok {
			panic(fmt.Sprintf("indent: no handler entry for kind %s", k))
		}
	}
}
