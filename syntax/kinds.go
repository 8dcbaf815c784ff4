package syntax

// NodeKind enumerates every kind of node the parser can produce.  Like
// token kinds, the enumeration order is load bearing: a node's kind is
// encoded into its record tag in the packed tree.
type NodeKind uint8

const (
	NodeRoot NodeKind = iota
	NodeLocalDef
	NodeFncDef
	NodeParamList
	NodeParam
	NodeRetTy
	NodeTy
	NodeExprStmt
	NodeBinExpr
	NodeBlock
	NodeFncCall
	NodeArgList
	NodeArg
	NodeIntLiteral
	NodeStringLiteral
	NodeParenExpr
	NodeError
)

var nodeKindNames = [...]string{
	NodeRoot:          "Root",
	NodeLocalDef:      "LocalDef",
	NodeFncDef:        "FncDef",
	NodeParamList:     "ParamList",
	NodeParam:         "Param",
	NodeRetTy:         "RetTy",
	NodeTy:            "Ty",
	NodeExprStmt:      "ExprStmt",
	NodeBinExpr:       "BinExpr",
	NodeBlock:         "Block",
	NodeFncCall:       "FncCall",
	NodeArgList:       "ArgList",
	NodeArg:           "Arg",
	NodeIntLiteral:    "IntLiteral",
	NodeStringLiteral: "StringLiteral",
	NodeParenExpr:     "ParenExpr",
	NodeError:         "Error",
}

func (nk NodeKind) String() string {
	return nodeKindNames[nk]
}
