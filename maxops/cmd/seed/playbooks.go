package main

import "maxops/maxops/sources/psql/models"

// The standard playbook catalog. Content is markdown the assistant quotes
// from when grounding replies.
var samplePlaybooks = []models.Playbook{
	{
		Title:       "Scheduling Preferences for Phoenix Brewery Plant",
		Description: "Comprehensive scheduling guidelines and preferences for Phoenix Brewery operations, including resource allocation, shift patterns, and optimization strategies.",
		Category:    "production",
		Tags:        "scheduling,phoenix-plant,brewery,optimization,shifts",
		Content: `# Scheduling Preferences for Phoenix Brewery Plant

## Resource Allocation Strategy
- **Primary Brewing Lines**: Allocate Brew Kettle 1 and 2 for high-volume production
- **Specialty Equipment**: Reserve Fermentation Tank 3 for experimental batches and seasonal varieties
- **Packaging Lines**: Line A for bottles, Line B for cans, coordinate to minimize changeovers

## Shift Patterns
- **Day Shift (6:00-14:00)**: Primary production operations, quality control testing
- **Evening Shift (14:00-22:00)**: Packaging operations, equipment maintenance
- **Night Shift (22:00-6:00)**: Cleaning cycles, fermentation monitoring, minimal production

## Optimization Rules
1. **Batch Sequencing**: Schedule similar beer styles consecutively to reduce cleaning time
2. **Resource Utilization**: Maintain 85% average capacity utilization during peak hours
3. **Quality Gates**: Allow 30-minute quality check buffers between critical operations
4. **Maintenance Windows**: Schedule preventive maintenance during low-demand periods

## Bottleneck Management
- **Primary Bottleneck**: Fermentation capacity - schedule ahead 14 days minimum
- **Secondary Bottleneck**: Packaging equipment - coordinate with demand forecasts
- **Contingency**: Keep 10% buffer capacity for urgent orders`,
	},
	{
		Title:       "Quality Control Standards for Pharmaceutical Manufacturing",
		Description: "Comprehensive quality control procedures, testing protocols, and compliance requirements for pharmaceutical production environments.",
		Category:    "quality",
		Tags:        "quality-control,pharmaceutical,compliance,testing,GMP",
		Content: `# Quality Control Standards for Pharmaceutical Manufacturing

## Testing Protocols
- **Incoming Materials**: Identity, purity and potency testing before release to production
- **In-Process Controls**: Sample every batch at blend, compression and coating stages
- **Finished Product**: Full release testing against specification before distribution

## Compliance Requirements
- Maintain batch records per GMP; deviations require documented investigation
- Environmental monitoring of clean rooms on every production shift
- Annual product quality reviews for all marketed products

## Hold and Release
- Quarantine all batches pending QC disposition
- Two-person verification on release decisions
- Out-of-specification results trigger the OOS investigation procedure`,
	},
	{
		Title:       "Predictive Maintenance Strategy for Industrial Equipment",
		Description: "Data-driven maintenance scheduling strategies to reduce unplanned downtime across production equipment.",
		Category:    "maintenance",
		Tags:        "maintenance,predictive,downtime,sensors,reliability",
		Content: `# Predictive Maintenance Strategy for Industrial Equipment

## Condition Monitoring
- Vibration analysis on rotating equipment weekly
- Thermal imaging of electrical panels monthly
- Oil analysis on gearboxes quarterly

## Scheduling Rules
1. Plan predictive interventions during scheduled changeovers where possible
2. Never defer a critical-severity alert beyond 48 hours
3. Bundle minor work orders by production line to cut travel time

## Metrics
- Target: unplanned downtime below 2% of scheduled production hours
- Track mean time between failures per asset class
- Review false-positive alert rate monthly and retune thresholds`,
	},
	{
		Title:       "Supply Chain Optimization for Automotive Parts",
		Description: "Inventory, supplier and logistics guidelines for just-in-time automotive component manufacturing.",
		Category:    "supply-chain",
		Tags:        "supply-chain,automotive,inventory,JIT,logistics",
		Content: `# Supply Chain Optimization for Automotive Parts

## Inventory Policy
- Class A components: 3 days of cover, daily replenishment
- Class B components: 7 days of cover, twice-weekly replenishment
- Class C components: 21 days of cover, weekly replenishment

## Supplier Management
- Dual-source all single-point-of-failure components
- Quarterly supplier scorecards: delivery, quality, responsiveness
- Escalate two consecutive late deliveries to the sourcing review board

## Logistics
- Consolidate inbound freight by region where lead time allows
- Expedite only on confirmed line-stop risk; log every expedite with cause`,
	},
	{
		Title:       "Energy Management for Manufacturing Facilities",
		Description: "Strategies for reducing energy consumption and cost across production facilities without impacting throughput.",
		Category:    "facilities",
		Tags:        "energy,sustainability,cost,utilities,demand",
		Content: `# Energy Management for Manufacturing Facilities

## Demand Management
- Shift energy-intensive operations outside utility peak windows where the schedule allows
- Stagger large motor starts to avoid demand spikes
- Pre-cool facilities before peak-rate periods in summer

## Monitoring
- Sub-meter each production line; review consumption per unit produced weekly
- Alert on idle-state consumption above baseline

## Efficiency Projects
1. Compressed air leak survey every quarter
2. Variable frequency drives on all pumps above 10 kW
3. Heat recovery from compressors to facility heating`,
	},
	{
		Title:       "Digital Transformation Roadmap for Legacy Manufacturing",
		Description: "Phased approach for modernizing legacy manufacturing operations with connected systems and analytics.",
		Category:    "strategy",
		Tags:        "digital,transformation,legacy,analytics,roadmap",
		Content: `# Digital Transformation Roadmap for Legacy Manufacturing

## Phase 1: Visibility
- Instrument critical equipment with sensors and connect to the historian
- Stand up dashboards for OEE, downtime and quality by line

## Phase 2: Prediction
- Deploy predictive maintenance models on bottleneck assets
- Introduce demand forecasting into the planning cycle

## Phase 3: Optimization
- Closed-loop scheduling driven by real-time shop floor data
- Autonomous material replenishment triggers

## Guardrails
- Every phase must show measurable ROI before the next begins
- Operators are trained before any system goes live on their line`,
	},
}
