package rewrite

import (
	tree_sitter_zig "github.com/tree-sitter-grammars/tree-sitter-zig/bindings/go"
	tree_sitter_csharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"
	tree_sitter_cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_php "github.com/tree-sitter/tree-sitter-php/bindings/go"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

func (r *TreeSitterRewriter) setupGo() {
	declQuery := `
        (function_declaration name: (identifier) @function.name)
        (method_declaration name: (field_identifier) @method.name)
        (type_declaration (type_spec name: (type_identifier) @type.name))
        (var_declaration (var_spec name: (identifier) @variable.name))
        (const_declaration (const_spec name: (identifier) @constant.name))
        (short_var_declaration left: (expression_list (identifier) @variable.name))
    `
	identQuery := `
        (identifier) @ident
        (type_identifier) @ident
        (field_identifier) @ident
        (package_identifier) @ident
    `
	r.register(LangGo, tree_sitter_go.Language(), declQuery, identQuery)
}

func (r *TreeSitterRewriter) setupPython() {
	declQuery := `
        (function_definition name: (identifier) @function.name)
        (class_definition name: (identifier) @class.name)
        (assignment left: (identifier) @variable.name)
    `
	identQuery := `
        (identifier) @ident
    `
	r.register(LangPython, tree_sitter_python.Language(), declQuery, identQuery)
}

func (r *TreeSitterRewriter) setupJavaScript() {
	declQuery := `
        (function_declaration name: (identifier) @function.name)
        (generator_function_declaration name: (identifier) @function.name)
        (method_definition name: (property_identifier) @method.name)
        (class_declaration name: (identifier) @class.name)
        (variable_declarator name: (identifier) @variable.name)
    `
	identQuery := `
        (identifier) @ident
        (property_identifier) @ident
        (shorthand_property_identifier) @ident
        (shorthand_property_identifier_pattern) @ident
    `
	r.register(LangJavaScript, tree_sitter_javascript.Language(), declQuery, identQuery)
}

func (r *TreeSitterRewriter) setupTypeScript() {
	declQuery := `
        (function_declaration name: (identifier) @function.name)
        (method_definition name: (property_identifier) @method.name)
        (class_declaration name: (type_identifier) @class.name)
        (interface_declaration name: (type_identifier) @interface.name)
        (type_alias_declaration name: (type_identifier) @type.name)
        (enum_declaration name: (identifier) @enum.name)
        (variable_declarator name: (identifier) @variable.name)
    `
	identQuery := `
        (identifier) @ident
        (type_identifier) @ident
        (property_identifier) @ident
        (shorthand_property_identifier) @ident
        (shorthand_property_identifier_pattern) @ident
    `
	r.register(LangTypeScript, tree_sitter_typescript.LanguageTypescript(), declQuery, identQuery)
}

func (r *TreeSitterRewriter) setupJava() {
	declQuery := `
        (method_declaration name: (identifier) @method.name)
        (constructor_declaration name: (identifier) @constructor.name)
        (class_declaration name: (identifier) @class.name)
        (record_declaration name: (identifier) @class.name)
        (interface_declaration name: (identifier) @interface.name)
        (enum_declaration name: (identifier) @enum.name)
        (field_declaration declarator: (variable_declarator name: (identifier) @field.name))
        (local_variable_declaration declarator: (variable_declarator name: (identifier) @variable.name))
    `
	identQuery := `
        (identifier) @ident
        (type_identifier) @ident
    `
	r.register(LangJava, tree_sitter_java.Language(), declQuery, identQuery)
}

func (r *TreeSitterRewriter) setupCSharp() {
	declQuery := `
        (method_declaration name: (identifier) @method.name)
        (constructor_declaration name: (identifier) @constructor.name)
        (class_declaration name: (identifier) @class.name)
        (interface_declaration name: (identifier) @interface.name)
        (struct_declaration name: (identifier) @struct.name)
        (record_declaration name: (identifier) @record.name)
        (enum_declaration name: (identifier) @enum.name)
        (property_declaration name: (identifier) @property.name)
        (field_declaration
            (variable_declaration
                (variable_declarator (identifier) @field.name)))
        (variable_declaration
            (variable_declarator (identifier) @variable.name))
    `
	identQuery := `
        (identifier) @ident
    `
	r.register(LangCSharp, tree_sitter_csharp.Language(), declQuery, identQuery)
}

func (r *TreeSitterRewriter) setupCpp() {
	declQuery := `
        (function_definition declarator: (function_declarator declarator: (identifier) @function.name))
        (class_specifier name: (type_identifier) @class.name)
        (struct_specifier name: (type_identifier) @struct.name)
        (enum_specifier name: (type_identifier) @enum.name)
        (declaration declarator: (init_declarator declarator: (identifier) @variable.name))
        (field_declaration declarator: (field_identifier) @field.name)
    `
	identQuery := `
        (identifier) @ident
        (type_identifier) @ident
        (field_identifier) @ident
        (namespace_identifier) @ident
    `
	r.register(LangCPP, tree_sitter_cpp.Language(), declQuery, identQuery)
}

func (r *TreeSitterRewriter) setupRust() {
	declQuery := `
        (function_item name: (identifier) @function.name)
        (struct_item name: (type_identifier) @struct.name)
        (enum_item name: (type_identifier) @enum.name)
        (trait_item name: (type_identifier) @trait.name)
        (type_item name: (type_identifier) @type.name)
        (let_declaration pattern: (identifier) @variable.name)
        (const_item name: (identifier) @constant.name)
        (static_item name: (identifier) @variable.name)
    `
	identQuery := `
        (identifier) @ident
        (type_identifier) @ident
        (field_identifier) @ident
    `
	r.register(LangRust, tree_sitter_rust.Language(), declQuery, identQuery)
}

func (r *TreeSitterRewriter) setupPHP() {
	declQuery := `
        (class_declaration name: (name) @class.name)
        (interface_declaration name: (name) @interface.name)
        (trait_declaration name: (name) @trait.name)
        (enum_declaration name: (name) @enum.name)
        (function_definition name: (name) @function.name)
        (method_declaration name: (name) @method.name)
    `
	identQuery := `
        (name) @ident
    `
	r.register(LangPHP, tree_sitter_php.LanguagePHP(), declQuery, identQuery)
}

func (r *TreeSitterRewriter) setupZig() {
	declQuery := `
        (function_declaration (identifier) @function.name)
        (variable_declaration (identifier) @variable.name)
    `
	identQuery := `
        (identifier) @ident
    `
	r.register(LangZig, tree_sitter_zig.Language(), declQuery, identQuery)
}
