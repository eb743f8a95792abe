package ast

// Visitor is implemented by passes over the tree, such as the code printer.
type Visitor interface {
	VisitIdentifier(*Identifier)
	VisitUniverseLiteral(*UniverseLiteral)
	VisitTupleLiteral(*TupleLiteral)
	VisitCallExpression(*CallExpression)
	VisitSigmaType(*SigmaType)

	VisitWildcardPattern(*WildcardPattern)
	VisitIdentifierPattern(*IdentifierPattern)
	VisitConstructorPattern(*ConstructorPattern)
	VisitTuplePattern(*TuplePattern)
}
