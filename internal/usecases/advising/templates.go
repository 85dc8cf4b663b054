package advising

// Marcadores aceitos nos textos:
//   {trend}        classificação da tendência
//   {momentum}     direção do momentum
//   {volatility}   volatilidade com duas casas decimais
//   {feature}      primeira funcionalidade informada
//   {last_feature} última funcionalidade informada
//   {segment}      segmento dominante ou o rótulo padrão

const (
	defaultRecommendationSegment = "key"
	defaultStrategySegment       = "key customers"
)

var growthRecommendations = []string{
	"Leverage {trend} with a 'Caregiver Elite' edition featuring next-gen {feature}.",
	"Host a 'Dementia Tech Fest' to amplify buzz, targeting trending regions.",
	"Launch a 'Momentum Bundle' with family sync features for growing demand.",
	"Partner with AI health platforms for scalable integrations amid rising sales.",
	"Offer a 'Growth Reward' cashback for bulk buys, riding high momentum.",
	"Create a gamified app for caregivers with real-time MemoTag insights.",
	"Expand globally with localized AI voices, capitalizing on stable growth.",
	"Sell limited-edition 'Hope Bands' with proceeds to dementia research.",
	"Upsell a predictive care subscription if momentum is {momentum}.",
	"Run a viral campaign with caregivers showcasing MemoTag success stories.",
}

var declineRecommendations = []string{
	"Counter {trend} with a 'Caregiver lifeline' discount on {feature}.",
	"Pivot to a rental model to lower barriers during volatile {volatility} sales.",
	"Launch a 'Memory Guardians' referral program to rebuild trust.",
	"Host free AI caregiving webinars to re-engage amid {momentum} momentum.",
	"Introduce a 'Core Care' low-cost version to recapture lost sales.",
	"Donate excess stock to dementia clinics, boosting goodwill in decline.",
	"Offer a 'Revival Trade-In' for old MemoTags to spark renewals.",
	"Focus retention with a free AI care tips app tied to {last_feature}.",
	"Test hyper-local ads in {segment} segment regions.",
	"Bundle with affordable add-ons to counter declining trends.",
}

var stableRecommendations = []string{
	"Stabilize sales with a 'Steady Care' subscription blending all features.",
	"Launch a 'Caregiver Stories' podcast to maintain steady engagement.",
	"Offer a 'Family Care Kit' with consistent pricing for steady demand.",
	"Partner with steady-state care homes for bulk MemoTag adoption.",
	"Introduce a loyalty points system for consistent buyers.",
	"Create a 'Memory Moments' AR feature to keep interest alive.",
	"Test a mid-tier model with balanced {feature} access.",
	"Run steady-state campaigns with caregivers as brand ambassadors.",
	"Upsell a 'Care Insights' dashboard for stable user growth.",
	"Host a virtual 'Dementia Care Day' to reinforce brand reliability.",
}

var growthStrategies = []string{
	"Scale B2B to {segment} with bulk deals for care facilities.",
	"Launch a premium tier with predictive AI alerts to ride {trend}.",
	"Expand neurologist trials, leveraging growth for clinical credibility.",
}

var declineStrategies = []string{
	"Retarget {segment} with loyalty offers to reverse {trend}.",
	"Shift to a low-entry subscription to stabilize cash flow in decline.",
	"Build grassroots trust with dementia NGOs amid volatile sales.",
}

var stableStrategies = []string{
	"Solidify {segment} with steady B2B partnerships.",
	"Introduce a balanced tiered pricing for consistent revenue.",
	"Collaborate with steady-state health forums for brand reinforcement.",
}

var marketingFunnels = []string{
	"AI caregiving blog → Webinar on dementia tech → MemoTag trial.",
	"Caregiver testimonials on social → Emotional landing page → Subscription.",
	"VR demo at health expos → QR code trial → Purchase CTA.",
	"Podcast on aging tech → Whitepaper on AI wearables → Email nurture.",
	"Ads to adult children → Virtual family consult → AI-driven sale.",
}
